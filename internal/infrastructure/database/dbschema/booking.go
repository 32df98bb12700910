package dbschema

import (
	"renova-server/internal/domain/booking"
	"renova-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Booking{})
}

// Booking represents the persisted booking schema.
type Booking struct {
	BaseModel
	UserID      uint   `gorm:"not null;index"`
	Date        string `gorm:"type:varchar(20);not null"`
	ServiceType string `gorm:"type:varchar(20)"`
	Status      int    `gorm:"not null"`
}

func (Booking) TableName() string {
	return "bookings"
}

// NewSchemaBooking converts a domain booking into a schema instance.
func NewSchemaBooking(b *booking.Booking) *Booking {
	if b == nil {
		return nil
	}

	return &Booking{
		BaseModel: BaseModel{
			ID:        b.ID,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		},
		UserID:      b.UserID,
		Date:        b.Date,
		ServiceType: b.ServiceType,
		Status:      b.Status,
	}
}

// EtoD converts a schema booking back to the domain representation.
func (b *Booking) EtoD() *booking.Booking {
	if b == nil {
		return nil
	}

	return &booking.Booking{
		ID:          b.ID,
		UserID:      b.UserID,
		Date:        b.Date,
		ServiceType: b.ServiceType,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
