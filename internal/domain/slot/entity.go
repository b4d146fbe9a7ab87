package slot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySection  = errors.New("section cannot be empty")
	ErrInvalidNumber = errors.New("slot number must be positive")
	ErrInvalidFloor  = errors.New("floor must be positive")
	ErrInvalidType   = errors.New("invalid slot type")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// DefaultPrice is the hourly rate applied when an administrator registers
// a slot without an explicit price.
const DefaultPrice = 50.0

// Slot is a physical parking space. The (section, number, floor) triple
// uniquely identifies it; the corresponding unique constraint lives in the
// database.
type Slot struct {
	id          uuid.UUID
	section     string
	number      int
	floor       int
	slotType    Type
	isAvailable bool
	price       float64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSlot(section string, number, floor int, slotType Type, price float64) (*Slot, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, ErrEmptySection
	}
	if number < 1 {
		return nil, ErrInvalidNumber
	}
	if floor < 1 {
		return nil, ErrInvalidFloor
	}
	if !slotType.IsValid() {
		return nil, ErrInvalidType
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Slot{
		id:          uuid.New(),
		section:     section,
		number:      number,
		floor:       floor,
		slotType:    slotType,
		isAvailable: true,
		price:       price,
	}, nil
}

func ReconstructSlot(
	id uuid.UUID,
	section string,
	number, floor int,
	slotType Type,
	isAvailable bool,
	price float64,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		section:     section,
		number:      number,
		floor:       floor,
		slotType:    slotType,
		isAvailable: isAvailable,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) Section() string      { return s.section }
func (s *Slot) Number() int          { return s.number }
func (s *Slot) Floor() int           { return s.floor }
func (s *Slot) SlotType() Type       { return s.slotType }
func (s *Slot) IsAvailable() bool    { return s.isAvailable }
func (s *Slot) Price() float64       { return s.price }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
