package parcels

import (
	"time"

	"parcelmarket/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:              p.ID.Hex(),
		Title:           p.Title,
		SenderEmail:     p.SenderEmail,
		ReceiverName:    p.ReceiverName,
		ReceiverAddress: p.ReceiverAddress,
		District:        p.District,
		Weight:          p.Weight,
		PaymentStatus:   entities.PaymentStatusType(p.PaymentStatus),
		DeliveryStatus:  entities.DeliveryStatusType(p.DeliveryStatus),
		AssignedRider:   p.AssignedRider,
		AssignedAt:      p.AssignedAt,
		CreatedAt:       p.CreatedAt,
	}
}

func FromDomainModify(parcelModify *entities.ParcelModify, createdAt time.Time) *ParcelDB {
	if parcelModify == nil {
		return nil
	}

	parcelDB := &ParcelDB{
		CreatedAt: createdAt,
	}
	if parcelModify.Title != nil {
		parcelDB.Title = *parcelModify.Title
	}
	if parcelModify.SenderEmail != nil {
		parcelDB.SenderEmail = *parcelModify.SenderEmail
	}
	if parcelModify.ReceiverName != nil {
		parcelDB.ReceiverName = *parcelModify.ReceiverName
	}
	if parcelModify.ReceiverAddress != nil {
		parcelDB.ReceiverAddress = *parcelModify.ReceiverAddress
	}
	if parcelModify.District != nil {
		parcelDB.District = *parcelModify.District
	}
	if parcelModify.Weight != nil {
		parcelDB.Weight = *parcelModify.Weight
	}
	if parcelModify.PaymentStatus != nil {
		parcelDB.PaymentStatus = parcelModify.PaymentStatus.String()
	}
	if parcelModify.DeliveryStatus != nil {
		parcelDB.DeliveryStatus = parcelModify.DeliveryStatus.String()
	}
	if parcelModify.AssignedRider != nil {
		parcelDB.AssignedRider = *parcelModify.AssignedRider
	}
	if parcelModify.AssignedAt != nil {
		parcelDB.AssignedAt = parcelModify.AssignedAt
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
