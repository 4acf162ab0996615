package store

import (
	"fmt"

	"github.com/google/uuid"

	"pocketbook/internal/model"
)

// seedReservedCategories inserts the locked system categories once, each
// with a matching default sub-category so entries always have somewhere to go.
func (s *Store) seedReservedCategories() error {
	for _, name := range model.ReservedCategories {
		taken, err := s.exists("SELECT COUNT(*) FROM categories WHERE name = ?", name)
		if err != nil {
			return err
		}
		if taken {
			continue
		}
		cat := model.Category{ID: uuid.New(), Name: name, Locked: true}
		if _, err := s.db.Exec("INSERT INTO categories (id, name, locked) VALUES (?, ?, 1)",
			cat.ID.String(), cat.Name); err != nil {
			return err
		}
		if _, err := s.db.Exec("INSERT INTO sub_categories (id, category_id, name) VALUES (?, ?, ?)",
			uuid.New().String(), cat.ID.String(), "General"); err != nil {
			return err
		}
	}
	return nil
}

// CreateCategory inserts a user category. Names are unique.
func (s *Store) CreateCategory(c *model.Category) error {
	taken, err := s.exists("SELECT COUNT(*) FROM categories WHERE name = ?", c.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("category %q: %w", c.Name, ErrDuplicate)
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err = s.db.Exec("INSERT INTO categories (id, name, locked) VALUES (?, ?, ?)",
		c.ID.String(), c.Name, boolToInt(c.Locked))
	return err
}

// RenameCategory changes a category name. Locked categories refuse.
func (s *Store) RenameCategory(id uuid.UUID, newName string) error {
	if err := s.requireUnlocked(id); err != nil {
		return err
	}
	taken, err := s.exists("SELECT COUNT(*) FROM categories WHERE name = ? AND id != ?", newName, id.String())
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("category %q: %w", newName, ErrDuplicate)
	}

	res, err := s.db.Exec("UPDATE categories SET name = ? WHERE id = ?", newName, id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteCategory removes a category and cascades to its sub-categories and
// their entries. Locked categories refuse.
func (s *Store) DeleteCategory(id uuid.UUID) error {
	if err := s.requireUnlocked(id); err != nil {
		return err
	}
	res, err := s.db.Exec("DELETE FROM categories WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ReplaceCategories swaps the entire category tree for the given one,
// preserving IDs. Used by restore, which needs to bypass the lock on
// reserved categories; everything happens in one transaction.
func (s *Store) ReplaceCategories(cats []model.Category) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return err
	}
	for _, c := range cats {
		if _, err := tx.Exec("INSERT INTO categories (id, name, locked) VALUES (?, ?, ?)",
			c.ID.String(), c.Name, boolToInt(c.Locked)); err != nil {
			return err
		}
		for _, sub := range c.SubCategories {
			if _, err := tx.Exec("INSERT INTO sub_categories (id, category_id, name) VALUES (?, ?, ?)",
				sub.ID.String(), c.ID.String(), sub.Name); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func (s *Store) requireUnlocked(id uuid.UUID) error {
	var locked int
	err := s.db.QueryRow("SELECT locked FROM categories WHERE id = ?", id.String()).Scan(&locked)
	if err != nil {
		return ErrNotFound
	}
	if locked != 0 {
		return ErrLockedCategory
	}
	return nil
}

// CreateSubCategory inserts a sub-category; the (category, name) pair must
// be unique.
func (s *Store) CreateSubCategory(sub *model.SubCategory) error {
	taken, err := s.exists("SELECT COUNT(*) FROM sub_categories WHERE category_id = ? AND name = ?",
		sub.CategoryID.String(), sub.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("sub-category %q: %w", sub.Name, ErrDuplicate)
	}

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	_, err = s.db.Exec("INSERT INTO sub_categories (id, category_id, name) VALUES (?, ?, ?)",
		sub.ID.String(), sub.CategoryID.String(), sub.Name)
	return err
}

// DeleteSubCategory removes a sub-category and cascades to its entries.
func (s *Store) DeleteSubCategory(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM sub_categories WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// CategoryByName looks up a category with its sub-categories.
func (s *Store) CategoryByName(name string) (model.Category, error) {
	cats, err := s.LoadCategories()
	if err != nil {
		return model.Category{}, err
	}
	for _, c := range cats {
		if c.Name == name {
			return c, nil
		}
	}
	return model.Category{}, ErrNotFound
}

// LoadCategories fetches every category with its sub-categories.
func (s *Store) LoadCategories() ([]model.Category, error) {
	rows, err := s.db.Query("SELECT id, name, locked FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var idStr string
		var locked int
		var c model.Category
		if err := rows.Scan(&idStr, &c.Name, &locked); err != nil {
			return nil, err
		}
		c.ID = uuid.MustParse(idStr)
		c.Locked = locked != 0
		byID[c.ID] = len(cats)
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	subRows, err := s.db.Query("SELECT id, category_id, name FROM sub_categories ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer func() { _ = subRows.Close() }()

	for subRows.Next() {
		var idStr, catStr, name string
		if err := subRows.Scan(&idStr, &catStr, &name); err != nil {
			return nil, err
		}
		catID := uuid.MustParse(catStr)
		idx, ok := byID[catID]
		if !ok {
			continue
		}
		cats[idx].SubCategories = append(cats[idx].SubCategories, model.SubCategory{
			ID:           uuid.MustParse(idStr),
			Name:         name,
			CategoryID:   catID,
			CategoryName: cats[idx].Name,
		})
	}
	return cats, subRows.Err()
}
