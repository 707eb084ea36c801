package model

import "strings"

// Person is an immutable contact record. Two persons are equal when every
// field matches; IsSamePerson is the looser identity used to detect
// duplicates.
type Person struct {
	Name    Name    `json:"name"`
	Phone   Phone   `json:"phone"`
	Email   Email   `json:"email"`
	Address Address `json:"address"`
	Tags    []Tag   `json:"tags"`
}

// NewPersonParams holds parameters for creating a new Person.
type NewPersonParams struct {
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Tags    []Tag
}

// NewPerson creates a Person with deduplicated, key-sorted tags.
func NewPerson(params NewPersonParams) Person {
	return Person{
		Name:    params.Name,
		Phone:   params.Phone,
		Email:   params.Email,
		Address: params.Address,
		Tags:    normalizeTags(params.Tags),
	}
}

// WithTags returns a copy of p carrying tags instead of its own.
func (p Person) WithTags(tags []Tag) Person {
	p.Tags = normalizeTags(tags)
	return p
}

// IsSamePerson reports whether other names the same person, ignoring case
// and repeated whitespace in the name.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name.identityKey() == other.Name.identityKey()
}

// Equal reports full structural equality. Tags compare as sets.
func (p Person) Equal(other Person) bool {
	if p.Name != other.Name || p.Phone != other.Phone ||
		p.Email != other.Email || p.Address != other.Address {
		return false
	}
	if len(p.Tags) != len(other.Tags) {
		return false
	}
	for _, t := range p.Tags {
		if !containsTag(other.Tags, t) {
			return false
		}
	}
	return true
}

// HasTag reports whether p carries t.
func (p Person) HasTag(t Tag) bool {
	return containsTag(p.Tags, t)
}

// HasAllTags reports whether p carries every tag in tags. An empty set is
// carried by everyone.
func (p Person) HasAllTags(tags []Tag) bool {
	for _, t := range tags {
		if !p.HasTag(t) {
			return false
		}
	}
	return true
}

// HasAnyTag reports whether p carries at least one tag in tags.
func (p Person) HasAnyTag(tags []Tag) bool {
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

func (p Person) String() string {
	var b strings.Builder
	b.WriteString(string(p.Name))
	b.WriteString("; Phone: ")
	b.WriteString(string(p.Phone))
	b.WriteString("; Email: ")
	b.WriteString(string(p.Email))
	b.WriteString("; Address: ")
	b.WriteString(string(p.Address))
	if len(p.Tags) > 0 {
		b.WriteString("; Tags: ")
		for _, t := range p.Tags {
			b.WriteString(t.String())
		}
	}
	return b.String()
}
