// Package ticket holds the ticket data model shared by both store designs:
// the identifiers, the validated text fields, the status enumeration, the
// draft/patch inputs and the sequential Store owned by the actor worker.
//
// Every type here round-trips through JSON with the field names id, title,
// description and status. A ticket ID is a bare JSON number and a status is
// one of the strings "ToDo", "InProgress" or "Done".
package ticket
