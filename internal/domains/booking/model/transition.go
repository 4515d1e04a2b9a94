package model

// Legal status transitions per business unit. Cancellation of an already
// cancelled booking is handled as a no-op by the service, not here.
var hotelTransitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

var gardenTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

var paymentTransitions = map[string][]string{
	PaymentPending:  {PaymentPartial, PaymentPaid, PaymentRefunded},
	PaymentPartial:  {PaymentPaid, PaymentRefunded},
	PaymentPaid:     {PaymentRefunded},
	PaymentRefunded: {},
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}

	return false
}

// CanTransition reports whether a booking in the given business unit may move
// from one status to another.
func CanTransition(businessUnit, from, to string) bool {
	transitions := hotelTransitions
	if businessUnit == UnitGarden {
		transitions = gardenTransitions
	}

	allowed, ok := transitions[from]
	if !ok {
		return false
	}

	return contains(allowed, to)
}

// CanTransitionPayment reports whether a payment status change is legal.
func CanTransitionPayment(from, to string) bool {
	allowed, ok := paymentTransitions[from]
	if !ok {
		return false
	}

	return contains(allowed, to)
}

// ResourceStatusFor returns the resource status mirroring a booking status
// change. The second return is false when the change has no resource side
// effect.
func ResourceStatusFor(businessUnit, bookingStatus string) (string, bool) {
	if businessUnit == UnitGarden {
		switch bookingStatus {
		case StatusConfirmed:
			return "booked", true
		case StatusCancelled:
			return "available", true
		}

		return "", false
	}

	switch bookingStatus {
	case StatusConfirmed:
		return "reserved", true
	case StatusCheckedIn:
		return "occupied", true
	case StatusCheckedOut, StatusCancelled:
		return "available", true
	}

	return "", false
}
