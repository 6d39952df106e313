// Package model defines the records exchanged with the keyword research
// service: the submitted form and the returned result tree. JSON field names
// match the service's wire format.
package model
