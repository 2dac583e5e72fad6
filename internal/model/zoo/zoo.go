// Package zoo holds the zoo entity and the payloads of its HTTP operations.
package zoo

// Zoo is a stored zoo. ID is assigned by the database on insert and never changes.
type Zoo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NotFoundMessage is the message returned when no zoo has the given id.
func NotFoundMessage(id string) string {
	return "Zoo with ID of " + id + " not found."
}
