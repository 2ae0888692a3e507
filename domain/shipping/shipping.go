/*
Package shipping holds the delivery offerings the shop sells against:
cities, pickup stops hosted in a city, scheduled pickups at a stop, and
home-delivery windows per city. Pickups and home deliveries carry the
fixed price the order saga copies into the delivery fee; the saga never
mutates them.
*/
package shipping

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPickupNotFound       = errors.New("pickup not found")
	ErrHomeDeliveryNotFound = errors.New("home delivery not found")
	ErrCityNotFound         = errors.New("city not found")
	ErrPickupStopNotFound   = errors.New("pickup stop not found")
)

// TimePeriod Delivery window within a day.
type TimePeriod string

const (
	PeriodMorning TimePeriod = "morning" // 8-12
	PeriodDay     TimePeriod = "day"     // 12-16
	PeriodEvening TimePeriod = "evening" // 16-20
)

// City Supported delivery area.
type City struct {
	ID   string `gorm:"type:char(36);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(64);uniqueIndex" json:"city"`
}

func (City) TableName() string { return "cities" }

// PickupStop A hosted pickup location within a city.
type PickupStop struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	CityID    string    `gorm:"type:char(36);index" json:"cityID"`
	AddressID string    `gorm:"type:char(36)" json:"addressID"`
	HostID    string    `gorm:"type:char(36)" json:"hostID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (PickupStop) TableName() string { return "pickup_stops" }

// Pickup A scheduled pickup slot at a stop, with its fixed price.
type Pickup struct {
	ID           string         `gorm:"type:char(36);primaryKey" json:"id"`
	PickupStopID string         `gorm:"type:char(36);index" json:"pickUpStopID"`
	DeliveryDate string         `gorm:"type:varchar(10)" json:"deliveryDate"`
	TimePeriod   TimePeriod     `gorm:"type:varchar(16)" json:"timePeriod"`
	Price        float64        `json:"price"`
	Limit        int            `json:"limit"`
	Open         bool           `json:"open"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Pickup) TableName() string { return "pickups" }

// HomeDelivery A scheduled home-delivery window for a city, with its
// fixed price.
type HomeDelivery struct {
	ID           string         `gorm:"type:char(36);primaryKey" json:"id"`
	CityID       string         `gorm:"type:char(36);index" json:"cityID"`
	DeliveryDate string         `gorm:"type:varchar(10)" json:"deliveryDate"`
	TimePeriod   TimePeriod     `gorm:"type:varchar(16)" json:"timePeriod"`
	Price        float64        `json:"price"`
	Limit        int            `json:"limit"`
	Open         bool           `json:"open"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (HomeDelivery) TableName() string { return "home_deliveries" }
