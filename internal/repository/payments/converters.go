package payments

import (
	"time"

	"parcelmarket/internal/entities"
)

const paidAtStringLayout = "2006-01-02 15:04:05"

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	return &entities.Payment{
		ID:            p.ID.Hex(),
		ParcelID:      p.ParcelID,
		Email:         p.Email,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
		PaidAtString:  p.PaidAtString,
	}
}

func FromDomainModify(paymentModify *entities.PaymentModify, paidAt time.Time) *PaymentDB {
	if paymentModify == nil {
		return nil
	}

	paymentDB := &PaymentDB{
		PaidAt:       paidAt,
		PaidAtString: paidAt.Format(paidAtStringLayout),
	}
	if paymentModify.ParcelID != nil {
		paymentDB.ParcelID = *paymentModify.ParcelID
	}
	if paymentModify.Email != nil {
		paymentDB.Email = *paymentModify.Email
	}
	if paymentModify.Amount != nil {
		paymentDB.Amount = *paymentModify.Amount
	}
	if paymentModify.PaymentMethod != nil {
		paymentDB.PaymentMethod = *paymentModify.PaymentMethod
	}
	if paymentModify.TransactionID != nil {
		paymentDB.TransactionID = *paymentModify.TransactionID
	}

	return paymentDB
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i, paymentDB := range paymentsDB {
		result[i] = *ToDomain(&paymentDB)
	}
	return result
}
