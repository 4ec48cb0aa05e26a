package models

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// Ticket is a user's ticket purchase joined with its ticket type flags.
// The registration subsystem owns tickets; this service reads them to
// decide booking eligibility.
type Ticket struct {
	ID            int64        `json:"id" db:"id"`
	Status        TicketStatus `json:"status" db:"status"`
	TicketTypeID  int64        `json:"ticketTypeId" db:"ticket_type_id"`
	IsRemote      bool         `json:"isRemote" db:"is_remote"`
	IncludesHotel bool         `json:"includesHotel" db:"includes_hotel"`
}

// Eligible reports whether the ticket permits a hotel booking: it must be
// paid, for in-person attendance, and include hotel accommodation.
func (t *Ticket) Eligible() bool {
	return t.Status == TicketPaid && !t.IsRemote && t.IncludesHotel
}

// Enrollment is a user's registration record for the event. Existence of
// an enrollment is a precondition for any booking. Ticket is nil when the
// user enrolled but never bought a ticket.
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Ticket    *Ticket   `json:"ticket,omitempty"`
}
