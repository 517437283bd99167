package commit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/samber/lo"
)

var (
	ErrNilConfig            = errors.New("config is nil")
	ErrEmptyList            = errors.New("type list is empty")
	ErrDuplicateListEntry   = errors.New("duplicate type in list")
	ErrUnknownListType      = errors.New("type in list is not defined in types")
	ErrInvalidMessageLength = errors.New("invalid message length bounds")
	ErrUnknownQuestion      = errors.New("unknown question")
	ErrDuplicateQuestion    = errors.New("duplicate question")
	ErrInvalidScope         = errors.New("invalid scope")
	ErrInvalidType          = errors.New("invalid type definition")
)

// Validate checks the structure of the configuration and reports every
// violation found, joined into a single error.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	var errs []error

	if len(c.List) == 0 {
		errs = append(errs, ErrEmptyList)
	}
	for _, dup := range lo.FindDuplicates(c.List) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateListEntry, dup))
	}
	for _, t := range c.List {
		if _, ok := c.Types[t]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownListType, t))
		}
	}

	switch {
	case c.MinMessageLength <= 0:
		errs = append(errs, fmt.Errorf("%w: minMessageLength must be positive, got %d", ErrInvalidMessageLength, c.MinMessageLength))
	case c.MaxMessageLength <= 0:
		errs = append(errs, fmt.Errorf("%w: maxMessageLength must be positive, got %d", ErrInvalidMessageLength, c.MaxMessageLength))
	case c.MinMessageLength >= c.MaxMessageLength:
		errs = append(errs, fmt.Errorf("%w: minMessageLength (%d) must be less than maxMessageLength (%d)",
			ErrInvalidMessageLength, c.MinMessageLength, c.MaxMessageLength))
	}

	for _, q := range c.Questions {
		if !q.Known() {
			errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownQuestion, int(q)))
		}
	}
	for _, dup := range lo.FindDuplicates(c.Questions) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateQuestion, dup.ToString()))
	}

	if slice.Some(c.Scopes, func(_ int, s string) bool { return strutil.IsBlank(s) }) {
		errs = append(errs, fmt.Errorf("%w: blank scope", ErrInvalidScope))
	}
	for _, dup := range lo.FindDuplicates(c.Scopes) {
		errs = append(errs, fmt.Errorf("%w: duplicate %q", ErrInvalidScope, dup))
	}

	keys := maputil.Keys(c.Types)
	sort.Strings(keys)
	for _, key := range keys {
		info := c.Types[key]
		switch {
		case strutil.IsBlank(key):
			errs = append(errs, fmt.Errorf("%w: blank type key", ErrInvalidType))
		case strutil.IsBlank(info.Description):
			errs = append(errs, fmt.Errorf("%w: %q has no description", ErrInvalidType, key))
		case strutil.IsBlank(info.Value):
			errs = append(errs, fmt.Errorf("%w: %q has no value", ErrInvalidType, key))
		}
	}

	return errors.Join(errs...)
}

// MismatchedValues returns the sorted type keys whose value differs from
// the key itself. Such entries are valid but usually a typo.
func (c *Config) MismatchedValues() []string {
	if c == nil {
		return nil
	}

	mismatched := maputil.Keys(maputil.Filter(c.Types, func(key string, info TypeInfo) bool {
		return info.Value != key
	}))
	sort.Strings(mismatched)

	return mismatched
}
