package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusSeated    = "seated"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

const (
	CategoryLunch   = "lunch"
	CategoryDinner  = "dinner"
	CategorySpecial = "special"
	CategoryWalkIn  = "walk_in"
)

// Customer is embedded into the reservation row; optional fields are
// pointers so they round-trip as NULL in the store and are omitted from
// JSON when absent.
type Customer struct {
	Name  string  `gorm:"not null" json:"name"`
	Phone string  `gorm:"not null" json:"phone"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type Reservation struct {
	DTO
	Date      time.Time `gorm:"not null" json:"date"`
	Duration  int       `gorm:"not null" json:"duration"`
	PartySize int       `gorm:"not null" json:"partySize"`
	Customer  Customer  `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	TableIds  []string  `gorm:"serializer:json" json:"tableIds,omitempty"`
	Category  string    `gorm:"not null" json:"category"`
	Status    string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedBy string    `gorm:"not null" json:"createdBy"`
	Source    *string   `json:"source,omitempty"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	SeatedAt    *time.Time `json:"seatedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`

	Tags          []string `gorm:"serializer:json" json:"tags,omitempty"`
	InternalNotes *string  `json:"internalNotes,omitempty"`
}

type CustomerInput struct {
	Name  string  `json:"name" validate:"required"`
	Phone string  `json:"phone" validate:"required,phone"`
	Email *string `json:"email" validate:"omitempty,email"`
	Notes *string `json:"notes"`
}

type CreateReservationInput struct {
	Date          time.Time     `json:"date" validate:"required"`
	Duration      int           `json:"duration" validate:"required,gt=0"`
	PartySize     int           `json:"partySize" validate:"required,gt=0"`
	Customer      CustomerInput `json:"customer" validate:"required"`
	TableIds      []string      `json:"tableIds" validate:"omitempty,dive,uuid4"`
	Category      string        `json:"category" validate:"required,oneof=lunch dinner special walk_in"`
	Status        string        `json:"status" validate:"omitempty,oneof=pending confirmed seated completed cancelled no_show"`
	CreatedBy     string        `json:"createdBy" validate:"required"`
	Source        *string       `json:"source" validate:"omitempty,oneof=phone web walk_in email other"`
	Tags          []string      `json:"tags"`
	InternalNotes *string       `json:"internalNotes"`
}

type UpdateCustomerInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
	Email *string `json:"email" validate:"omitempty,email"`
	Notes *string `json:"notes"`
}

// UpdateReservationInput carries any subset of mutable fields; absent
// fields stay untouched on merge. Lifecycle timestamps are writable
// independent of status.
type UpdateReservationInput struct {
	Date          *time.Time           `json:"date"`
	Duration      *int                 `json:"duration" validate:"omitempty,gt=0"`
	PartySize     *int                 `json:"partySize" validate:"omitempty,gt=0"`
	Customer      *UpdateCustomerInput `json:"customer"`
	TableIds      *[]string            `json:"tableIds" validate:"omitempty,dive,uuid4"`
	Category      *string              `json:"category" validate:"omitempty,oneof=lunch dinner special walk_in"`
	Status        *string              `json:"status" validate:"omitempty,oneof=pending confirmed seated completed cancelled no_show"`
	Source        *string              `json:"source" validate:"omitempty,oneof=phone web walk_in email other"`
	CreatedBy     *string              `json:"createdBy" validate:"omitempty,min=1"`
	Tags          *[]string            `json:"tags"`
	InternalNotes *string              `json:"internalNotes"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	SeatedAt    *time.Time `json:"seatedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`

	CancelledBy        *string `json:"cancelledBy"`
	CancellationReason *string `json:"cancellationReason"`
}
