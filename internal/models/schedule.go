package models

// TimeSlot is one of the fixed bookable times of the day, e.g. "09:00".
type TimeSlot string

// StaffMember is identified by name, drawn from the fixed staff list.
type StaffMember string
