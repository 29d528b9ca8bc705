package entities

import "time"

type Parcel struct {
	ID              string
	Title           string
	SenderEmail     string
	ReceiverName    string
	ReceiverAddress string
	District        string
	Weight          float64
	PaymentStatus   PaymentStatusType
	DeliveryStatus  DeliveryStatusType
	AssignedRider   string // rider email, empty while unassigned
	AssignedAt      *time.Time
	CreatedAt       time.Time
}

type PaymentStatusType string

const (
	ParcelUnpaid PaymentStatusType = "unpaid"
	ParcelPaid   PaymentStatusType = "paid"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

type ParcelModify struct {
	ID              *string
	Title           *string
	SenderEmail     *string
	ReceiverName    *string
	ReceiverAddress *string
	District        *string
	Weight          *float64
	PaymentStatus   *PaymentStatusType
	DeliveryStatus  *DeliveryStatusType
	AssignedRider   *string
	AssignedAt      *time.Time
}

// ParcelFilter narrows parcel listings; nil fields are not applied.
type ParcelFilter struct {
	PaymentStatus  *PaymentStatusType
	DeliveryStatus *DeliveryStatusType
}

// ParcelAssignment reports the outcome of a rider assignment. The two
// modified counts are independent: the parcel and rider updates are
// separate writes with no atomicity between them.
type ParcelAssignment struct {
	ParcelID       string
	RiderEmail     string
	AssignedAt     time.Time
	ParcelModified int64
	RiderModified  int64
}
