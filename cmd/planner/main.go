// Command planner is a terminal client for the prepper backend. Searches and
// chat go through the API; marked recipes and the saved plan live in local
// storage, same slots the web frontend uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"prepper/internal/dates"
	"prepper/internal/recipe"
	"prepper/internal/storage"
	"prepper/internal/store"
)

const usage = `usage: planner [flags] <command>

commands:
  search <query>     search recipes by name
  show <id>          show one recipe in full
  random             fetch a random recipe
  mark <id>          mark or unmark a recipe for planning
  marked             list marked recipes
  plan show          print the saved meal plan
  plan set <file>    save a meal plan from a JSON file
  plan clear         delete the saved meal plan
  chat <message>     ask the assistant
`

func main() {
	apiURL := pflag.String("api", "http://localhost:4000", "prepper backend base URL")
	dataDir := pflag.String("data-dir", defaultDataDir(), "directory for locally saved state")
	pflag.Parse()

	if err := run(*apiURL, *dataDir, pflag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "planner: %v\n", err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".prepper")
	}
	return ".prepper"
}

func run(apiURL, dataDir string, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	backend, err := storage.Open(os.Getenv("DATABASE_URL"), dataDir)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	marked := store.NewMarkedRecipes(backend)
	plan := store.NewPlan(backend)
	api := newClient(apiURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("search needs a query")
		}
		return runSearch(ctx, api, marked, args[1])
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("show needs a recipe id")
		}
		r, err := api.Lookup(ctx, args[1])
		if err != nil {
			return err
		}
		printRecipe(r)
		return nil
	case "random":
		r, err := api.Random(ctx)
		if err != nil {
			return err
		}
		printRecipe(r)
		return nil
	case "mark":
		if len(args) < 2 {
			return fmt.Errorf("mark needs a recipe id")
		}
		return runMark(ctx, api, marked, args[1])
	case "marked":
		return runMarked(marked)
	case "plan":
		return runPlan(plan, args[1:])
	case "chat":
		if len(args) < 2 {
			return fmt.Errorf("chat needs a message")
		}
		reply, mode, err := api.Chat(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("[%s] %s\n", mode, reply)
		return nil
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runSearch(ctx context.Context, api *client, marked *store.MarkedRecipes, query string) error {
	recipes, err := api.Search(ctx, query)
	if err != nil {
		return err
	}
	for _, r := range recipes {
		flag := " "
		if marked.IsMarked(r.ID) {
			flag = "*"
		}
		fmt.Printf("%s %-7s %s (%s, %s)\n", flag, r.ID, r.Title, r.Category, r.Area)
	}
	return nil
}

func runMark(ctx context.Context, api *client, marked *store.MarkedRecipes, id string) error {
	r, err := api.Lookup(ctx, id)
	if err != nil {
		return err
	}
	marked.Toggle(r)
	if marked.IsMarked(id) {
		fmt.Printf("marked %s\n", r.Title)
	} else {
		fmt.Printf("unmarked %s\n", r.Title)
	}
	return nil
}

func runMarked(marked *store.MarkedRecipes) error {
	refs := marked.Value()
	if len(refs) == 0 {
		fmt.Println("no marked recipes")
		return nil
	}
	for _, ref := range refs {
		fmt.Printf("%-7s %s\n", ref.ID, ref.Title)
	}
	return nil
}

func runPlan(plan *store.Plan, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("plan needs one of: show, set, clear")
	}

	switch args[0] {
	case "show":
		if !plan.Exists() {
			fmt.Println("no plan saved")
			return nil
		}
		fmt.Printf("Week of %s\n", dates.WeekRange(dates.Monday(time.Now())))
		var pretty any
		if err := json.Unmarshal(plan.Value(), &pretty); err != nil {
			return fmt.Errorf("saved plan is not valid JSON: %w", err)
		}
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("plan set needs a JSON file")
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read plan file: %w", err)
		}
		if !json.Valid(data) {
			return fmt.Errorf("plan file is not valid JSON")
		}
		plan.Set(json.RawMessage(data))
		fmt.Println("plan saved")
		return nil
	case "clear":
		plan.Clear()
		fmt.Println("plan cleared")
		return nil
	default:
		return fmt.Errorf("unknown plan command %q", args[0])
	}
}

func printRecipe(r *recipe.Recipe) {
	fmt.Printf("%s (%s)\n", r.Title, r.ID)
	if r.Category != "" || r.Area != "" {
		fmt.Printf("%s, %s\n", r.Category, r.Area)
	}
	fmt.Printf("~%d kcal, %d min prep, %d min cook\n\n", r.Calories, r.PrepMinutes, r.CookMinutes)

	fmt.Println("Ingredients:")
	for _, ing := range r.Ingredients {
		if ing.Amount != "" {
			fmt.Printf("  - %s (%s)\n", ing.Name, ing.Amount)
		} else {
			fmt.Printf("  - %s\n", ing.Name)
		}
	}

	fmt.Println("\nSteps:")
	for i, step := range r.Steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}
