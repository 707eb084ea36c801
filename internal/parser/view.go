package parser

import (
	"strings"

	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

func parseList(args string) (command.Command, error) {
	m := Tokenize(args, PrefixTag, PrefixSaveFolder, PrefixDropFolder)

	if m.Preamble() != "" {
		return nil, errors.NewInvalidFormat(command.ListUsage)
	}
	if err := m.VerifyNoDuplicates(PrefixSaveFolder, PrefixDropFolder); err != nil {
		return nil, err
	}

	action := command.FolderNone
	switch {
	case m.Has(PrefixSaveFolder) && m.Has(PrefixDropFolder):
		return nil, errors.NewInvalidFormatMsg("Use either sf/ or df/, not both.", command.ListUsage)
	case m.Has(PrefixSaveFolder):
		action = command.FolderSave
	case m.Has(PrefixDropFolder):
		action = command.FolderDelete
	}
	for _, p := range []Prefix{PrefixSaveFolder, PrefixDropFolder} {
		if v, ok := m.Value(p); ok && v != "" {
			return nil, errors.NewInvalidFormatMsg(p.String()+" takes no value.", command.ListUsage)
		}
	}

	tags, err := model.ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	if action != command.FolderNone && len(tags) == 0 {
		return nil, errors.NewInvalidFormatMsg("A folder needs at least one t/TAG.", command.ListUsage)
	}
	return command.NewList(tags, action), nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, errors.NewInvalidFormat(command.FindUsage)
	}
	return command.NewFind(keywords), nil
}

func parseBiz(args string) (command.Command, error) {
	m := Tokenize(args, PrefixFeature, PrefixTag)

	if !m.Has(PrefixFeature) || m.Preamble() != "" {
		return nil, errors.NewInvalidFormat(command.BizUsage)
	}
	if err := m.VerifyNoDuplicates(PrefixFeature); err != nil {
		return nil, err
	}

	raw, _ := m.Value(PrefixFeature)
	name, err := model.ParseFeatureName(raw)
	if err != nil {
		return nil, err
	}
	tags, err := model.ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	return command.NewBiz(model.NewFeature(name, tags)), nil
}

func parseUnbiz(args string) (command.Command, error) {
	m := Tokenize(args, PrefixFeature)

	if m.Preamble() != "" {
		return nil, errors.NewInvalidFormat(command.UnbizUsage)
	}
	var names []string
	for _, raw := range m.AllValues(PrefixFeature) {
		name, err := model.ParseFeatureName(raw)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return command.NewUnbiz(names), nil
}

func parseMan(args string) (command.Command, error) {
	fields := strings.Fields(args)
	switch {
	case len(fields) == 0:
		return command.NewMan(""), nil
	case len(fields) > 1 || !command.IsCommandWord(fields[0]):
		return nil, errors.NewInvalidFormat(command.ManUsage)
	}
	return command.NewMan(fields[0]), nil
}
