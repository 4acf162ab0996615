package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
	"pocketbook/internal/store"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Manage spending categories",
	RunE:    runCategoriesList,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and sub-categories",
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a category, its sub-categories, and their entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRemove,
}

var categoriesRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoriesRename,
}

var categoriesSubAddCmd = &cobra.Command{
	Use:   "sub-add <category> <name>",
	Short: "Create a sub-category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoriesSubAdd,
}

var categoriesSubRemoveCmd = &cobra.Command{
	Use:   "sub-remove <category.sub>",
	Short: "Delete a sub-category and its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesSubRemove,
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesRemoveCmd,
		categoriesRenameCmd, categoriesSubAddCmd, categoriesSubRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	cats, err := s.LoadCategories()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, c := range cats {
		locked := ""
		if c.Locked {
			locked = "locked"
		}
		rows = append(rows, []string{c.Name, locked})
		for _, sub := range c.SubCategories {
			rows = append(rows, []string{"  " + sub.Name, ""})
		}
	}
	printTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"Name", ""},
		Rows:    rows,
	})
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	c := model.Category{Name: args[0]}
	if err := s.CreateCategory(&c); err != nil {
		return err
	}
	fmt.Printf("  Added category %q\n", c.Name)
	return nil
}

func runCategoriesRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	c, err := s.CategoryByName(args[0])
	if err != nil {
		return fmt.Errorf("category %q not found", args[0])
	}
	if err := s.DeleteCategory(c.ID); err != nil {
		if errors.Is(err, store.ErrLockedCategory) {
			return fmt.Errorf("%q is a reserved category and cannot be removed", c.Name)
		}
		return err
	}
	fmt.Printf("  Removed category %q\n", c.Name)
	return nil
}

func runCategoriesRename(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	c, err := s.CategoryByName(args[0])
	if err != nil {
		return fmt.Errorf("category %q not found", args[0])
	}
	if err := s.RenameCategory(c.ID, args[1]); err != nil {
		if errors.Is(err, store.ErrLockedCategory) {
			return fmt.Errorf("%q is a reserved category and cannot be renamed", c.Name)
		}
		return err
	}
	fmt.Printf("  Renamed %q to %q\n", args[0], args[1])
	return nil
}

func runCategoriesSubAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	c, err := s.CategoryByName(args[0])
	if err != nil {
		return fmt.Errorf("category %q not found", args[0])
	}
	sub := model.SubCategory{Name: args[1], CategoryID: c.ID}
	if err := s.CreateSubCategory(&sub); err != nil {
		return err
	}
	fmt.Printf("  Added sub-category %s\n", model.NewPairID(c.Name, sub.Name))
	return nil
}

func runCategoriesSubRemove(_ *cobra.Command, args []string) error {
	pair, err := model.ParsePairID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	cats, err := s.LoadCategories()
	if err != nil {
		return err
	}
	sub, ok := findSubCategory(cats, pair)
	if !ok {
		return fmt.Errorf("sub-category %q not found", pair)
	}
	if err := s.DeleteSubCategory(sub.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed sub-category %s and its entries\n", pair)
	return nil
}
