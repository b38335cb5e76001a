// Package authorization decides who may see and change tickets and comments.
// The functions here are pure: they take the actor and the facts about the
// target and never touch storage or transport.
package authorization

// ForbiddenReason distinguishes why an action was denied.
type ForbiddenReason string

const (
	ReasonNotOwner          ForbiddenReason = "not-owner"
	ReasonLockedAfterReview ForbiddenReason = "locked-after-review"
	ReasonRoleInsufficient  ForbiddenReason = "role-insufficient"
)

// Actor is the authenticated caller.
type Actor struct {
	UserID uint
	Role   Role
}

// Resource is what CanModify needs to know about a ticket or comment.
type Resource struct {
	OwnerUserID     uint
	LockedForReview bool
}

// Decision is the outcome of a policy check. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  ForbiddenReason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason ForbiddenReason) Decision {
	return Decision{Reason: reason}
}

// CanModify applies the edit/delete rules: admins always pass; otherwise the
// actor must own the resource, and a resource locked after review is
// read-only even to its owner.
func CanModify(actor Actor, res Resource) Decision {
	if actor.Role.IsAdmin() {
		return allow()
	}
	if actor.UserID != res.OwnerUserID {
		return deny(ReasonNotOwner)
	}
	if res.LockedForReview {
		return deny(ReasonLockedAfterReview)
	}
	return allow()
}

// CanViewInternal reports whether internal comments are visible to actor.
func CanViewInternal(actor Actor) bool {
	return actor.Role != RoleUser
}

// CanMarkViewed reports whether actor may record the first staff view.
func CanMarkViewed(actor Actor) bool {
	return actor.Role.IsStaff()
}

// CanCreateInternal reports whether actor may post internal comments.
func CanCreateInternal(actor Actor) bool {
	return actor.Role.IsStaff()
}

// CanAccessTicket reports whether actor may read a ticket requested by
// requesterUserID. Staff see every ticket; users see their own.
func CanAccessTicket(actor Actor, requesterUserID uint) bool {
	if actor.Role.IsStaff() {
		return true
	}
	return actor.UserID == requesterUserID
}

// TicketScope restricts a ticket listing. A nil RequesterUserID means all
// tickets are visible.
type TicketScope struct {
	RequesterUserID *uint
}

// ScopeTicketList limits standard users to the tickets they requested.
func ScopeTicketList(actor Actor) TicketScope {
	if actor.Role == RoleUser {
		id := actor.UserID
		return TicketScope{RequesterUserID: &id}
	}
	return TicketScope{}
}
