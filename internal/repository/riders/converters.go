package riders

import (
	"time"

	"parcelmarket/internal/entities"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:            r.ID.Hex(),
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		District:      r.District,
		Status:        entities.RiderStatusType(r.Status),
		WorkStatus:    entities.RiderWorkStatusType(r.WorkStatus),
		CurrentParcel: r.CurrentParcel,
		AppliedAt:     r.AppliedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromDomainModify(riderModify *entities.RiderModify, appliedAt time.Time) *RiderDB {
	if riderModify == nil {
		return nil
	}

	riderDB := &RiderDB{
		AppliedAt: appliedAt,
		UpdatedAt: appliedAt,
	}
	if riderModify.Name != nil {
		riderDB.Name = *riderModify.Name
	}
	if riderModify.Email != nil {
		riderDB.Email = *riderModify.Email
	}
	if riderModify.Phone != nil {
		riderDB.Phone = *riderModify.Phone
	}
	if riderModify.District != nil {
		riderDB.District = *riderModify.District
	}
	if riderModify.Status != nil {
		riderDB.Status = riderModify.Status.String()
	}
	if riderModify.WorkStatus != nil {
		riderDB.WorkStatus = riderModify.WorkStatus.String()
	}
	if riderModify.CurrentParcel != nil {
		riderDB.CurrentParcel = *riderModify.CurrentParcel
	}

	return riderDB
}

func ToDomainList(ridersDB []RiderDB) []entities.Rider {
	if len(ridersDB) == 0 {
		return []entities.Rider{}
	}

	result := make([]entities.Rider, len(ridersDB))
	for i, riderDB := range ridersDB {
		result[i] = *ToDomain(&riderDB)
	}
	return result
}
