// Package auth implements the whitelist access check consulted before any
// query is served.
package auth

import "strings"

// Checker decides whether an identity may use the tracker. The allow-list
// is fixed at construction; an empty list authorizes everyone, which is the
// documented policy for single-household deployments.
type Checker struct {
	allowed map[string]struct{}
}

// Result carries the outcome of an access check along with the resolved
// identity, so the page can greet the user or explain the denial.
type Result struct {
	Authorized bool
	Email      string
	Message    string
}

func NewChecker(allowed []string) *Checker {
	set := make(map[string]struct{}, len(allowed))
	for _, e := range allowed {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return &Checker{allowed: set}
}

// Allowed reports whether the identity passes the whitelist. Comparison is
// case-insensitive on the email address.
func (c *Checker) Allowed(email string) bool {
	if len(c.allowed) == 0 {
		return true
	}
	_, ok := c.allowed[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// Check returns the full access result for an identity.
func (c *Checker) Check(email string) Result {
	email = strings.TrimSpace(email)
	if len(c.allowed) == 0 {
		return Result{Authorized: true, Email: email, Message: "Access granted (no whitelist configured)"}
	}
	if c.Allowed(email) {
		return Result{Authorized: true, Email: email, Message: "Access granted"}
	}
	return Result{Authorized: false, Email: email, Message: "Access denied"}
}
