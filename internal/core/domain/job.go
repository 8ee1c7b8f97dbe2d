package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a work order.
//
// Transitions are deliberately not enforced: callers may set any status in
// any order, matching the workshop's actual usage where jobs get reopened or
// delivered straight from the bench. The enum exists for bucketing, not
// gating.
type JobStatus string

const (
	StatusPending    JobStatus = "Pending"
	StatusInProgress JobStatus = "In Progress"
	StatusDone       JobStatus = "Done"
	StatusDelivered  JobStatus = "Delivered"
)

// IsActive reports whether the status counts toward the "active" stats bucket.
func (s JobStatus) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}

// IsCompleted reports whether the status counts toward the "completed" bucket.
func (s JobStatus) IsCompleted() bool {
	return s == StatusDone || s == StatusDelivered
}

var ErrJobNotFound = errors.New("job not found")
var ErrForbidden = errors.New("access forbidden")

// Job is the core aggregate: one work order tracking a vehicle through the
// workshop. Photos are inline base64 data URLs, append-ordered.
type Job struct {
	ID                 string     `json:"id" bson:"_id"`
	CustomerName       string     `json:"customer_name" bson:"customer_name"`
	ContactNumber      string     `json:"contact_number" bson:"contact_number"`
	CarBrand           string     `json:"car_brand" bson:"car_brand"`
	CarModel           string     `json:"car_model" bson:"car_model"`
	Year               int        `json:"year" bson:"year"`
	RegistrationNumber string     `json:"registration_number" bson:"registration_number"`
	VIN                string     `json:"vin,omitempty" bson:"vin,omitempty"`
	Kms                int        `json:"kms,omitempty" bson:"kms,omitempty"`
	EntryDate          string     `json:"entry_date" bson:"entry_date"`
	AssignedMechanic   string     `json:"assigned_mechanic" bson:"assigned_mechanic"`
	WorkDescription    string     `json:"work_description" bson:"work_description"`
	EstimatedDelivery  string     `json:"estimated_delivery" bson:"estimated_delivery"`
	Status             JobStatus  `json:"status" bson:"status"`
	Photos             []string   `json:"photos" bson:"photos"`
	InvoiceAmount      *float64   `json:"invoice_amount,omitempty" bson:"invoice_amount,omitempty"`
	Notes              string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CompletionDate     *time.Time `json:"completion_date,omitempty" bson:"completion_date,omitempty"`
	ConfirmComplete    bool       `json:"confirm_complete" bson:"confirm_complete"`
	CreatedAt          time.Time  `json:"created_at" bson:"created_at"`
}

// VisibleTo reports whether actor may read (and potentially mutate) this job.
func (j *Job) VisibleTo(actor *User) bool {
	if Capabilities[actor.Role].OwnJobsOnly {
		return j.AssignedMechanic == actor.Username
	}
	return true
}

// Patch field names, as they appear in update payloads.
const (
	FieldCustomerName       = "customer_name"
	FieldContactNumber      = "contact_number"
	FieldCarBrand           = "car_brand"
	FieldCarModel           = "car_model"
	FieldYear               = "year"
	FieldRegistrationNumber = "registration_number"
	FieldVIN                = "vin"
	FieldKms                = "kms"
	FieldEntryDate          = "entry_date"
	FieldAssignedMechanic   = "assigned_mechanic"
	FieldWorkDescription    = "work_description"
	FieldEstimatedDelivery  = "estimated_delivery"
	FieldStatus             = "status"
	FieldInvoiceAmount      = "invoice_amount"
	FieldNotes              = "notes"
	FieldConfirmComplete    = "confirm_complete"
)

// Capability describes what a role may see and write on jobs.
type Capability struct {
	// OwnJobsOnly limits read/write scope to jobs assigned to the actor.
	OwnJobsOnly bool
	// Writable is the set of patch fields the role may apply.
	// A nil set means every field is writable.
	Writable map[string]struct{}
}

// Capabilities is the per-role access table consulted by list/get/update.
var Capabilities = map[string]Capability{
	RoleManager: {},
	RoleMechanic: {
		OwnJobsOnly: true,
		Writable: map[string]struct{}{
			FieldStatus:          {},
			FieldNotes:           {},
			FieldConfirmComplete: {},
		},
	},
}

// JobPatch carries a partial update. Nil fields are left untouched; fields a
// role may not write are silently dropped by Restrict, not rejected.
type JobPatch struct {
	CustomerName       *string
	ContactNumber      *string
	CarBrand           *string
	CarModel           *string
	Year               *int
	RegistrationNumber *string
	VIN                *string
	Kms                *int
	EntryDate          *string
	AssignedMechanic   *string
	WorkDescription    *string
	EstimatedDelivery  *string
	Status             *JobStatus
	InvoiceAmount      *float64
	Notes              *string
	ConfirmComplete    *bool
}

// IsEmpty reports whether the patch carries no fields at all.
func (p JobPatch) IsEmpty() bool {
	return p == JobPatch{}
}

// Restrict returns a copy of the patch with every field outside the role's
// writable set cleared.
func (p JobPatch) Restrict(role string) JobPatch {
	writable := Capabilities[role].Writable
	if writable == nil {
		return p
	}
	restricted := JobPatch{}
	if _, ok := writable[FieldCustomerName]; ok {
		restricted.CustomerName = p.CustomerName
	}
	if _, ok := writable[FieldContactNumber]; ok {
		restricted.ContactNumber = p.ContactNumber
	}
	if _, ok := writable[FieldCarBrand]; ok {
		restricted.CarBrand = p.CarBrand
	}
	if _, ok := writable[FieldCarModel]; ok {
		restricted.CarModel = p.CarModel
	}
	if _, ok := writable[FieldYear]; ok {
		restricted.Year = p.Year
	}
	if _, ok := writable[FieldRegistrationNumber]; ok {
		restricted.RegistrationNumber = p.RegistrationNumber
	}
	if _, ok := writable[FieldVIN]; ok {
		restricted.VIN = p.VIN
	}
	if _, ok := writable[FieldKms]; ok {
		restricted.Kms = p.Kms
	}
	if _, ok := writable[FieldEntryDate]; ok {
		restricted.EntryDate = p.EntryDate
	}
	if _, ok := writable[FieldAssignedMechanic]; ok {
		restricted.AssignedMechanic = p.AssignedMechanic
	}
	if _, ok := writable[FieldWorkDescription]; ok {
		restricted.WorkDescription = p.WorkDescription
	}
	if _, ok := writable[FieldEstimatedDelivery]; ok {
		restricted.EstimatedDelivery = p.EstimatedDelivery
	}
	if _, ok := writable[FieldStatus]; ok {
		restricted.Status = p.Status
	}
	if _, ok := writable[FieldInvoiceAmount]; ok {
		restricted.InvoiceAmount = p.InvoiceAmount
	}
	if _, ok := writable[FieldNotes]; ok {
		restricted.Notes = p.Notes
	}
	if _, ok := writable[FieldConfirmComplete]; ok {
		restricted.ConfirmComplete = p.ConfirmComplete
	}
	return restricted
}

// ApplyTo merges the patch into job in place.
func (p JobPatch) ApplyTo(job *Job) {
	if p.CustomerName != nil {
		job.CustomerName = *p.CustomerName
	}
	if p.ContactNumber != nil {
		job.ContactNumber = *p.ContactNumber
	}
	if p.CarBrand != nil {
		job.CarBrand = *p.CarBrand
	}
	if p.CarModel != nil {
		job.CarModel = *p.CarModel
	}
	if p.Year != nil {
		job.Year = *p.Year
	}
	if p.RegistrationNumber != nil {
		job.RegistrationNumber = *p.RegistrationNumber
	}
	if p.VIN != nil {
		job.VIN = *p.VIN
	}
	if p.Kms != nil {
		job.Kms = *p.Kms
	}
	if p.EntryDate != nil {
		job.EntryDate = *p.EntryDate
	}
	if p.AssignedMechanic != nil {
		job.AssignedMechanic = *p.AssignedMechanic
	}
	if p.WorkDescription != nil {
		job.WorkDescription = *p.WorkDescription
	}
	if p.EstimatedDelivery != nil {
		job.EstimatedDelivery = *p.EstimatedDelivery
	}
	if p.Status != nil {
		job.Status = *p.Status
	}
	if p.InvoiceAmount != nil {
		job.InvoiceAmount = p.InvoiceAmount
	}
	if p.Notes != nil {
		job.Notes = *p.Notes
	}
	if p.ConfirmComplete != nil {
		job.ConfirmComplete = *p.ConfirmComplete
	}
}
