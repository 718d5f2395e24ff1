package queryparser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Config is an immutable set of flags. The zero value has no flags set and
// is ready to use. A Config is safe for concurrent use by multiple goroutines.
type Config struct {
	set uint8
	log *slog.Logger
}

// NewConfig builds a Config from flags. It fails with ErrFlagConflict when
// IgnoreWhiteSpace is requested without WhiteSpaceIsValid, and with
// ErrUnknownFlag for values that are not one of the declared flags.
func NewConfig(flags ...Flag) (Config, error) {
	var c Config
	var errs []error
	for _, f := range flags {
		if !f.valid() {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownFlag, f))
			continue
		}
		c.set |= 1 << f
	}
	if err := c.check(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return c, nil
}

// MustConfig is like NewConfig but panics on error.
func MustConfig(flags ...Flag) Config {
	c, err := NewConfig(flags...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Config) check() error {
	if c.Has(IgnoreWhiteSpace) && !c.Has(WhiteSpaceIsValid) {
		return fmt.Errorf("%w: %s requires %s", ErrFlagConflict, IgnoreWhiteSpace, WhiteSpaceIsValid)
	}
	return nil
}

// Has reports whether flag is set.
func (c Config) Has(flag Flag) bool {
	return flag.valid() && c.set&(1<<flag) != 0
}

// Flags returns the set flags in stage order.
func (c Config) Flags() []Flag {
	var out []Flag
	for _, f := range AllFlags() {
		if c.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// With returns a copy of c with flags added.
func (c Config) With(flags ...Flag) (Config, error) {
	n, err := NewConfig(append(c.Flags(), flags...)...)
	if err != nil {
		return Config{}, err
	}
	n.log = c.log
	return n, nil
}

// Without returns a copy of c with flags removed. Called without arguments
// it removes every flag. Removing WhiteSpaceIsValid while IgnoreWhiteSpace
// stays set fails with ErrFlagConflict.
func (c Config) Without(flags ...Flag) (Config, error) {
	n := Config{log: c.log}
	if len(flags) == 0 {
		return n, nil
	}
	n.set = c.set
	for _, f := range flags {
		if !f.valid() {
			return Config{}, fmt.Errorf("%w: %s", ErrUnknownFlag, f)
		}
		n.set &^= 1 << f
	}
	if err := n.check(); err != nil {
		return Config{}, err
	}
	return n, nil
}

// WithLogger returns a copy of c that reports parse stages to l at debug
// level. A nil logger disables logging.
func (c Config) WithLogger(l *slog.Logger) Config {
	c.log = l
	return c
}

func (c Config) logger() *slog.Logger {
	if c.log == nil {
		return discardLogger
	}
	return c.log
}
