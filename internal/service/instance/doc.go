// Package instance makes sure only one alarm process drives the LED strip.
package instance
