package parser

import (
	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

func parseAdd(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)

	for _, p := range []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress} {
		if !m.Has(p) {
			return nil, errors.NewInvalidFormat(command.AddUsage)
		}
	}
	if m.Preamble() != "" {
		return nil, errors.NewInvalidFormat(command.AddUsage)
	}
	if err := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	raw, _ := m.Value(PrefixName)
	name, err := model.ParseName(raw)
	if err != nil {
		return nil, err
	}
	raw, _ = m.Value(PrefixPhone)
	phone, err := model.ParsePhone(raw)
	if err != nil {
		return nil, err
	}
	raw, _ = m.Value(PrefixEmail)
	email, err := model.ParseEmail(raw)
	if err != nil {
		return nil, err
	}
	raw, _ = m.Value(PrefixAddress)
	address, err := model.ParseAddress(raw)
	if err != nil {
		return nil, err
	}
	tags, err := model.ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.NewAdd(model.NewPerson(model.NewPersonParams{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    tags,
	})), nil
}

func parseDelete(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, errors.NewInvalidFormat(command.DeleteUsage)
	}
	return command.NewDelete(index), nil
}

func parseEdit(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixTag, PrefixAddTag, PrefixDeleteTag)

	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, errors.NewInvalidFormat(command.EditUsage)
	}
	if err := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	var desc command.EditDescriptor
	if raw, ok := m.Value(PrefixName); ok {
		name, err := model.ParseName(raw)
		if err != nil {
			return nil, err
		}
		desc.Name = &name
	}
	if raw, ok := m.Value(PrefixPhone); ok {
		phone, err := model.ParsePhone(raw)
		if err != nil {
			return nil, err
		}
		desc.Phone = &phone
	}
	if raw, ok := m.Value(PrefixEmail); ok {
		email, err := model.ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		desc.Email = &email
	}
	if raw, ok := m.Value(PrefixAddress); ok {
		address, err := model.ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		desc.Address = &address
	}

	if err := parseTagEdit(m, &desc); err != nil {
		return nil, err
	}
	if !desc.IsAnyFieldEdited() {
		return nil, errors.NewInvalidFormatMsg("At least one field to edit must be provided.", command.EditUsage)
	}
	return command.NewEdit(index, desc), nil
}

// parseTagEdit fills the tag part of desc. Only one of t/, at/ and dt/ may be
// used; a single empty t/ clears every tag.
func parseTagEdit(m ArgumentMap, desc *command.EditDescriptor) error {
	modes := map[Prefix]command.TagMode{
		PrefixTag:       command.TagsReplace,
		PrefixAddTag:    command.TagsAdd,
		PrefixDeleteTag: command.TagsDelete,
	}

	var used Prefix
	for p := range modes {
		if !m.Has(p) {
			continue
		}
		if used != "" {
			return errors.NewInvalidFormatMsg("Only one of t/, at/ or dt/ may be used at a time.", command.EditUsage)
		}
		used = p
	}
	if used == "" {
		return nil
	}

	values := m.AllValues(used)
	desc.TagMode = modes[used]
	if used == PrefixTag && len(values) == 1 && values[0] == "" {
		desc.Tags = nil
		return nil
	}
	tags, err := model.ParseTags(values)
	if err != nil {
		return err
	}
	desc.Tags = tags
	return nil
}
