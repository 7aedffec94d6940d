package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
)

const DefaultFile = "account_info.json"

type Account struct {
	Id   string
	Name string
}

// Directory maps Tempo account ids to display names.
type Directory struct {
	names map[string]string
}

func NewDirectory(names map[string]string) *Directory {
	d := &Directory{names: make(map[string]string, len(names))}
	for id, name := range names {
		d.names[id] = name
	}
	return d
}

// Load reads the directory from a JSON object file. A missing file yields an
// empty directory; a malformed one is an error.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warnf("%s not found, account ids will be used as names", path)
			return NewDirectory(nil), nil
		}
		return nil, fmt.Errorf("reading account directory: %w", err)
	}

	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing account directory %s: %w", path, err)
	}
	log.Debugf("Loaded %d accounts from %s", len(names), path)
	return NewDirectory(names), nil
}

// Name returns the display name of the account, or the id itself when unknown.
func (d *Directory) Name(id string) string {
	if name, ok := d.names[id]; ok && name != "" {
		return name
	}
	return id
}

// Resolve returns the accounts to process: only the explicit one when given,
// every known account ordered by id otherwise.
func (d *Directory) Resolve(explicitId string) []Account {
	if explicitId != "" {
		return []Account{{Id: explicitId, Name: d.Name(explicitId)}}
	}

	ids := make([]string, 0, len(d.names))
	for id := range d.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	accounts := make([]Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, Account{Id: id, Name: d.Name(id)})
	}
	return accounts
}

func (d *Directory) Len() int {
	return len(d.names)
}
