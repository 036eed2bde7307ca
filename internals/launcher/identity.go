package launcher

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/utils"
)

// ErrIdentityNotFound is returned if the user cache has no entry for a name
var ErrIdentityNotFound = errors.New("identity not found")

// Identity is a local play identity. It is never checked against any account service
type Identity struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
	// Minted is true if the identity was created because no cached one was found
	Minted bool `json:"-"`
}

// ResolveIdentity looks up name in a usercache.json file
func ResolveIdentity(userCacheFile string, name string) (*Identity, error) {
	cache := []Identity{}
	if err := utils.ReadJSONFile(userCacheFile, &cache); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %s", ErrIdentityNotFound, userCacheFile, err)
	}
	for _, id := range cache {
		if id.Name == name {
			found := id
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: no entry for %q", ErrIdentityNotFound, name)
}

// MintIdentity returns a new random identity for name
func MintIdentity(name string) *Identity {
	return &Identity{Name: name, UUID: uuid.NewString(), Minted: true}
}

// EnsureProfile creates an empty launcher_profiles.json in root if there is none
func EnsureProfile(root string) error {
	file := layout.New(root).ProfilesFile()
	if utils.FileExists(file) {
		return nil
	}
	return utils.WriteJSONFile(file, map[string]interface{}{"profiles": map[string]interface{}{}})
}
