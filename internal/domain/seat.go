package domain

type SeatType string

const (
	SeatTypeStandard SeatType = "STANDARD"
	SeatTypePremium  SeatType = "PREMIUM"
	SeatTypeVIP      SeatType = "VIP"
)

type Seat struct {
	Row       int
	Number    int
	Type      SeatType
	Available bool
}

func NewSeat(row, number int, seatType SeatType, available bool) (*Seat, error) {
	if row <= 0 {
		return nil, &ValidationError{Field: "row", Reason: "must be positive"}
	}

	if number <= 0 {
		return nil, &ValidationError{Field: "number", Reason: "must be positive"}
	}

	return &Seat{Row: row, Number: number, Type: seatType, Available: available}, nil
}
