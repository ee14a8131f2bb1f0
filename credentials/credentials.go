// Package credentials resolves AWS access keys from named environment variables.
package credentials

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingVariable is returned when a named environment variable is not set.
var ErrMissingVariable = errors.New("missing environment variable")

// Pair is an access id and secret key.
type Pair struct {
	AccessID  string
	SecretKey string
}

// String hides the secret key.
func (p Pair) String() string {
	return fmt.Sprintf("{AccessID:%s SecretKey:REDACTED}", p.AccessID)
}

// GoString hides the secret key from %#v and pretty printers.
func (p Pair) GoString() string {
	return p.String()
}

// FromEnv reads the access id and secret key from the variables named accessIDVar and secretKeyVar.
func FromEnv(accessIDVar, secretKeyVar string) (Pair, error) {
	id, err := lookup(accessIDVar)
	if err != nil {
		return Pair{}, err
	}

	secret, err := lookup(secretKeyVar)
	if err != nil {
		return Pair{}, err
	}

	return Pair{AccessID: id, SecretKey: secret}, nil
}

func lookup(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingVariable, name)
	}

	return v, nil
}
