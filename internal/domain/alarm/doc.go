// Package alarm contains core domain types for the sunrise alarm.
//
// It defines Schedule (the validated alarm configuration), Weekday and Color,
// the error taxonomy shared by every layer, and the recurrence computation
// that turns a Schedule into the next concrete wake-up instant.
package alarm
