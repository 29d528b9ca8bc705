package entities

import "time"

type Rider struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	District      string
	Status        RiderStatusType
	WorkStatus    RiderWorkStatusType
	CurrentParcel string // parcel id, empty while idle
	AppliedAt     time.Time
	UpdatedAt     time.Time
}

type RiderStatusType string

const (
	RiderPending  RiderStatusType = "pending"
	RiderActive   RiderStatusType = "active"
	RiderRejected RiderStatusType = "rejected"
)

func (t RiderStatusType) String() string {
	return string(t)
}

type RiderWorkStatusType string

const (
	RiderAvailable  RiderWorkStatusType = "available"
	RiderInDelivery RiderWorkStatusType = "in_delivery"
)

func (t RiderWorkStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID            *string
	Name          *string
	Email         *string
	Phone         *string
	District      *string
	Status        *RiderStatusType
	WorkStatus    *RiderWorkStatusType
	CurrentParcel *string
}
