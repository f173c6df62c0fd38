package entities

import "time"

type Address struct {
	ID        string
	Name      string
	Email     string
	Street    string
	City      string
	State     string
	Zip       string
	Default   bool
	CreatedAt time.Time
}

func (a Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		Name:    a.Name,
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Default: a.Default,
	}
}
