// Package web provides the HTTP surface of the DAG trigger service.
package web

// Placeholder values used when the request does not supply parameters.
// They deliberately mirror the documentation placeholders so a
// misconfigured caller is visible in the DAG run conf.
const (
	DefaultBucket = "YOUR-BUCKET-NAME"
	DefaultFile   = "INPUT-PATH-TO-FILE"
)

// TriggerRequest is the optional JSON body of a POST trigger request. Both
// fields may be omitted; any supplied string is accepted as-is, so the
// fields are pointers to tell an absent value apart from an empty one.
type TriggerRequest struct {
	Bucket *string `json:"bucket"`
	File   *string `json:"file"`
}
