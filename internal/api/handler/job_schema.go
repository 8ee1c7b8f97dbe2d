package handler

import (
	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createJobRequest struct {
	CustomerName       string   `json:"customer_name"       validate:"required"`
	ContactNumber      string   `json:"contact_number"      validate:"required"`
	CarBrand           string   `json:"car_brand"           validate:"required"`
	CarModel           string   `json:"car_model"           validate:"required"`
	Year               int      `json:"year"                validate:"required"`
	RegistrationNumber string   `json:"registration_number" validate:"required"`
	VIN                string   `json:"vin"`
	Kms                int      `json:"kms"`
	EntryDate          string   `json:"entry_date"          validate:"required"`
	AssignedMechanic   string   `json:"assigned_mechanic"   validate:"required"`
	WorkDescription    string   `json:"work_description"    validate:"required"`
	EstimatedDelivery  string   `json:"estimated_delivery"  validate:"required"`
	InvoiceAmount      *float64 `json:"invoice_amount"`
}

// updateJobRequest mirrors the job fields as optionals: absent fields are
// left untouched. Which present fields actually apply depends on the actor's
// role capability.
type updateJobRequest struct {
	CustomerName       *string  `json:"customer_name"`
	ContactNumber      *string  `json:"contact_number"`
	CarBrand           *string  `json:"car_brand"`
	CarModel           *string  `json:"car_model"`
	Year               *int     `json:"year"`
	RegistrationNumber *string  `json:"registration_number"`
	VIN                *string  `json:"vin"`
	Kms                *int     `json:"kms"`
	EntryDate          *string  `json:"entry_date"`
	AssignedMechanic   *string  `json:"assigned_mechanic"`
	WorkDescription    *string  `json:"work_description"`
	EstimatedDelivery  *string  `json:"estimated_delivery"`
	Status             *string  `json:"status"`
	InvoiceAmount      *float64 `json:"invoice_amount"`
	Notes              *string  `json:"notes"`
	ConfirmComplete    *bool    `json:"confirm_complete"`
}

type addPhotoResponse struct {
	Message  string `json:"message"`
	PhotoURL string `json:"photo_url"`
}

type customChargeRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type invoiceRequest struct {
	LabourCost    float64               `json:"labour_cost"`
	PartsCost     float64               `json:"parts_cost"`
	TuningCost    float64               `json:"tuning_cost"`
	OtherCharges  float64               `json:"other_charges"`
	CustomCharges []customChargeRequest `json:"custom_charges"`
	GSTRate       *float64              `json:"gst_rate"`
}

type whatsAppRequest struct {
	JobID   string `json:"job_id"  validate:"required"`
	Message string `json:"message" validate:"required"`
}

// --- Request → Service input ---

func toCreateJobInput(req createJobRequest) ports.CreateJobInput {
	return ports.CreateJobInput{
		CustomerName:       req.CustomerName,
		ContactNumber:      req.ContactNumber,
		CarBrand:           req.CarBrand,
		CarModel:           req.CarModel,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		VIN:                req.VIN,
		Kms:                req.Kms,
		EntryDate:          req.EntryDate,
		AssignedMechanic:   req.AssignedMechanic,
		WorkDescription:    req.WorkDescription,
		EstimatedDelivery:  req.EstimatedDelivery,
		InvoiceAmount:      req.InvoiceAmount,
	}
}

func toJobPatch(req updateJobRequest) domain.JobPatch {
	patch := domain.JobPatch{
		CustomerName:       req.CustomerName,
		ContactNumber:      req.ContactNumber,
		CarBrand:           req.CarBrand,
		CarModel:           req.CarModel,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		VIN:                req.VIN,
		Kms:                req.Kms,
		EntryDate:          req.EntryDate,
		AssignedMechanic:   req.AssignedMechanic,
		WorkDescription:    req.WorkDescription,
		EstimatedDelivery:  req.EstimatedDelivery,
		InvoiceAmount:      req.InvoiceAmount,
		Notes:              req.Notes,
		ConfirmComplete:    req.ConfirmComplete,
	}
	if req.Status != nil {
		status := domain.JobStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

func toInvoiceCharges(req invoiceRequest) domain.InvoiceCharges {
	charges := domain.InvoiceCharges{
		LabourCost:   req.LabourCost,
		PartsCost:    req.PartsCost,
		TuningCost:   req.TuningCost,
		OtherCharges: req.OtherCharges,
		GSTRate:      domain.DefaultGSTRate,
	}
	if req.GSTRate != nil {
		charges.GSTRate = *req.GSTRate
	}
	for _, cc := range req.CustomCharges {
		charges.CustomCharges = append(charges.CustomCharges, domain.CustomCharge{
			Description: cc.Description,
			Amount:      cc.Amount,
		})
	}
	return charges
}
