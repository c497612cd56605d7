package pet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileRepo is the persistent pet state. All reads return clones so callers
// can never mutate stored state behind the repo's back.
type FileRepo struct {
	mu   sync.Mutex
	path string
	pet  Pet
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "pet.json"),
		pet:  defaultPet(),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var loaded Pet
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	r.pet = normalize(loaded)
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.pet, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func normalize(p Pet) Pet {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = "Buddy"
	}
	if !validType(p.Type) {
		p.Type = "🐱"
	}
	if p.Owned == nil {
		p.Owned = []string{}
	}
	if p.Equipped == nil {
		p.Equipped = []string{}
	}
	p.Level = levelFor(p.XP)
	return p
}

func clone(p Pet) Pet {
	out := p
	out.Owned = append([]string{}, p.Owned...)
	out.Equipped = append([]string{}, p.Equipped...)
	return out
}

func (r *FileRepo) Get() Pet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.pet)
}

func (r *FileRepo) AddXP(amount int) (Pet, error) {
	if amount <= 0 {
		return r.Get(), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pet.XP += amount
	r.pet.Level = levelFor(r.pet.XP)
	if err := r.saveLocked(); err != nil {
		return Pet{}, err
	}
	return clone(r.pet), nil
}

// Buy spends XP on a shop item. Returns bought=false when the item is
// unknown, already owned, or unaffordable.
func (r *FileRepo) Buy(itemID string) (bool, Pet, error) {
	item, ok := itemByID(itemID)
	if !ok {
		return false, r.Get(), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if contains(r.pet.Owned, itemID) || r.pet.XP < item.Cost {
		return false, clone(r.pet), nil
	}
	r.pet.XP -= item.Cost
	r.pet.Level = levelFor(r.pet.XP)
	r.pet.Owned = append(r.pet.Owned, itemID)
	if err := r.saveLocked(); err != nil {
		return false, Pet{}, err
	}
	return true, clone(r.pet), nil
}

// Equip wears an owned item, displacing whatever occupies its slot.
func (r *FileRepo) Equip(itemID string) (Pet, error) {
	item, ok := itemByID(itemID)
	if !ok {
		return r.Get(), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !contains(r.pet.Owned, itemID) {
		return clone(r.pet), nil
	}
	kept := make([]string, 0, len(r.pet.Equipped)+1)
	for _, id := range r.pet.Equipped {
		if worn, ok := itemByID(id); ok && worn.Slot == item.Slot {
			continue
		}
		kept = append(kept, id)
	}
	r.pet.Equipped = append(kept, itemID)
	if err := r.saveLocked(); err != nil {
		return Pet{}, err
	}
	return clone(r.pet), nil
}

func (r *FileRepo) Unequip(itemID string) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !contains(r.pet.Equipped, itemID) {
		return clone(r.pet), nil
	}
	kept := make([]string, 0, len(r.pet.Equipped))
	for _, id := range r.pet.Equipped {
		if id != itemID {
			kept = append(kept, id)
		}
	}
	r.pet.Equipped = kept
	if err := r.saveLocked(); err != nil {
		return Pet{}, err
	}
	return clone(r.pet), nil
}

func (r *FileRepo) Rename(name string) (Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.Get(), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pet.Name = name
	if err := r.saveLocked(); err != nil {
		return Pet{}, err
	}
	return clone(r.pet), nil
}

func (r *FileRepo) SetType(t string) (Pet, error) {
	if !validType(t) {
		return r.Get(), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pet.Type = t
	if err := r.saveLocked(); err != nil {
		return Pet{}, err
	}
	return clone(r.pet), nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
