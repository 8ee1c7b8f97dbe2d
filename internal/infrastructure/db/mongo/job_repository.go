package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

func (r *JobRepository) Insert(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, job); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.Job
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &job, nil
}

// List returns jobs matching filter, newest first.
func (r *JobRepository) List(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.AssignedMechanic != "" {
		query["assigned_mechanic"] = filter.AssignedMechanic
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := []*domain.Job{}
	for cursor.Next(ctx) {
		var job domain.Job
		if err := cursor.Decode(&job); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, &job)
	}
	return jobs, cursor.Err()
}

// Update applies the patch and the optional completion stamp in one write
// and returns the updated document.
func (r *JobRepository) Update(ctx context.Context, id string, patch domain.JobPatch, completionDate *time.Time) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := patchToSet(patch, completionDate)
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var job domain.Job
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) AppendPhoto(ctx context.Context, id string, photo string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"photos": photo}})
	if err != nil {
		return fmt.Errorf("append photo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the scoped list queries.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "assigned_mechanic", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// patchToSet maps the present patch fields onto a $set document.
func patchToSet(p domain.JobPatch, completionDate *time.Time) bson.M {
	set := bson.M{}
	if p.CustomerName != nil {
		set["customer_name"] = *p.CustomerName
	}
	if p.ContactNumber != nil {
		set["contact_number"] = *p.ContactNumber
	}
	if p.CarBrand != nil {
		set["car_brand"] = *p.CarBrand
	}
	if p.CarModel != nil {
		set["car_model"] = *p.CarModel
	}
	if p.Year != nil {
		set["year"] = *p.Year
	}
	if p.RegistrationNumber != nil {
		set["registration_number"] = *p.RegistrationNumber
	}
	if p.VIN != nil {
		set["vin"] = *p.VIN
	}
	if p.Kms != nil {
		set["kms"] = *p.Kms
	}
	if p.EntryDate != nil {
		set["entry_date"] = *p.EntryDate
	}
	if p.AssignedMechanic != nil {
		set["assigned_mechanic"] = *p.AssignedMechanic
	}
	if p.WorkDescription != nil {
		set["work_description"] = *p.WorkDescription
	}
	if p.EstimatedDelivery != nil {
		set["estimated_delivery"] = *p.EstimatedDelivery
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.InvoiceAmount != nil {
		set["invoice_amount"] = *p.InvoiceAmount
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	if p.ConfirmComplete != nil {
		set["confirm_complete"] = *p.ConfirmComplete
	}
	if completionDate != nil {
		set["completion_date"] = *completionDate
	}
	return set
}
