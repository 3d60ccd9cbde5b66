package domain

import (
	"slices"
	"time"
)

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Clone returns a copy of u sharing no memory with it.
func (u User) Clone() User {
	u.LastLogin = cloneTime(u.LastLogin)
	return u
}

// Clone returns a copy of e sharing no memory with it.
func (e Employee) Clone() Employee {
	e.HireDate = cloneTime(e.HireDate)
	return e
}

// Clone returns a copy of c sharing no memory with it.
func (c Content) Clone() Content {
	c.Tags = slices.Clone(c.Tags)
	c.PublishedAt = cloneTime(c.PublishedAt)
	c.ScheduledAt = cloneTime(c.ScheduledAt)
	return c
}

// Clone returns a copy of i sharing no memory with it.
func (i Inquiry) Clone() Inquiry {
	i.AnsweredAt = cloneTime(i.AnsweredAt)
	return i
}

// Clone returns a copy of n sharing no memory with it.
func (n Notification) Clone() Notification {
	n.ScheduledAt = cloneTime(n.ScheduledAt)
	n.SentAt = cloneTime(n.SentAt)
	return n
}

// Clone returns a copy of a sharing no memory with it.
func (a AdminAccount) Clone() AdminAccount {
	a.Permissions = slices.Clone(a.Permissions)
	a.LastLogin = cloneTime(a.LastLogin)
	return a
}
