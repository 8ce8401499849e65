package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/workaxis/hrms-backend-go/internal/domain/offer"
)

type offerLetterRepository struct{ s *Store }

func (s *Store) OfferLetters() offer.OfferLetterRepository { return offerLetterRepository{s} }

func (r offerLetterRepository) withJoins(o offer.OfferLetter) offer.OfferLetter {
	if d, ok := r.s.data.departments[o.DepartmentID]; ok {
		name := d.Name
		o.DepartmentName = &name
	}
	if d, ok := r.s.data.designations[o.DesignationID]; ok {
		title := d.Title
		o.DesignationTitle = &title
	}
	if o.EmployeeID != nil {
		if e, ok := r.s.data.employees[*o.EmployeeID]; ok {
			code := e.EmployeeCode
			o.EmployeeCode = &code
		}
	}
	o.UnresolvedPlaceholders = slices.Clone(o.UnresolvedPlaceholders)
	return o
}

func (r offerLetterRepository) Create(ctx context.Context, o offer.OfferLetter) (offer.OfferLetter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("OfferLetters.Create"); err != nil {
		return offer.OfferLetter{}, err
	}
	o.ID = newID()
	o.CreatedAt, o.UpdatedAt = now(), now()
	r.s.data.offers[o.ID] = o
	return r.withJoins(o), nil
}

func (r offerLetterRepository) Update(ctx context.Context, o offer.OfferLetter) (offer.OfferLetter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("OfferLetters.Update"); err != nil {
		return offer.OfferLetter{}, err
	}
	existing, ok := r.s.data.offers[o.ID]
	if !ok || existing.DeletedAt != nil {
		return offer.OfferLetter{}, offer.ErrOfferLetterNotFound
	}
	existing.Status = o.Status
	existing.EmployeeID = o.EmployeeID
	existing.FilePath = o.FilePath
	existing.SentOn = o.SentOn
	existing.AcceptedOn = o.AcceptedOn
	existing.UpdatedBy = o.UpdatedBy
	existing.UpdatedAt = now()
	r.s.data.offers[o.ID] = existing
	return r.withJoins(existing), nil
}

func (r offerLetterRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.data.offers[id]
	if !ok || o.DeletedAt != nil {
		return offer.ErrOfferLetterNotFound
	}
	t := now()
	o.DeletedAt = &t
	o.UpdatedBy = &deletedBy
	r.s.data.offers[id] = o
	return nil
}

func (r offerLetterRepository) GetByID(ctx context.Context, id string) (offer.OfferLetter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.data.offers[id]
	if !ok || o.DeletedAt != nil {
		return offer.OfferLetter{}, offer.ErrOfferLetterNotFound
	}
	return r.withJoins(o), nil
}

func (r offerLetterRepository) GetByIDForUpdate(ctx context.Context, id string) (offer.OfferLetter, error) {
	return r.GetByID(ctx, id)
}

func (r offerLetterRepository) List(ctx context.Context, filter offer.OfferLetterFilter) ([]offer.OfferLetter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []offer.OfferLetter{}
	for _, o := range r.s.data.offers {
		if o.DeletedAt != nil {
			continue
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && (o.EmployeeID == nil || *o.EmployeeID != *filter.EmployeeID) {
			continue
		}
		list = append(list, r.withJoins(o))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].GeneratedOn.After(list[j].GeneratedOn) })
	return list, nil
}
