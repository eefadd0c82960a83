package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/roadtripai/tripsync/internal/models"
)

// runSaveStory сохраняет историю поездки
func (c *Cli) runSaveStory(ctx context.Context) error {
	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	content, err := c.io.ReadInput("Content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	origin, err := c.io.ReadInput("Origin: ")
	if err != nil {
		return fmt.Errorf("failed to read origin: %w", err)
	}
	destination, err := c.io.ReadInput("Destination: ")
	if err != nil {
		return fmt.Errorf("failed to read destination: %w", err)
	}
	persona, err := c.io.ReadInput("Persona: ")
	if err != nil {
		return fmt.Errorf("failed to read persona: %w", err)
	}

	story := &models.Story{
		Title:       title,
		Content:     content,
		Origin:      origin,
		Destination: destination,
		Persona:     persona,
	}
	if err := c.dataService.SaveStory(ctx, story); err != nil {
		return fmt.Errorf("failed to save story: %w", err)
	}

	c.io.Println("Story saved.")
	c.io.Printf("ID: %s\n", story.ID)
	return nil
}

// runGetStory выводит сохраненную историю
func (c *Cli) runGetStory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing story id. Usage: tripsync get-story <id>")
	}

	story, err := c.dataService.GetStory(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get story: %w", err)
	}

	c.io.Printf("Title:       %s\n", story.Title)
	c.io.Printf("Route:       %s -> %s\n", story.Origin, story.Destination)
	c.io.Printf("Persona:     %s\n", story.Persona)
	c.io.Printf("Plays:       %d\n", story.PlayCount)
	if story.Favorite {
		c.io.Println("Favorite:    yes")
	}
	c.io.Println()
	c.io.Println(story.Content)
	return nil
}

// runListStories выводит список сохраненных историй
func (c *Cli) runListStories(ctx context.Context) error {
	c.io.Println("=== Saved Stories ===")
	c.io.Println()

	stories, err := c.dataService.ListStories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list stories: %w", err)
	}

	if len(stories) == 0 {
		c.io.Println("No stories found.")
		c.io.Println()
		c.io.Println("Use 'tripsync save-story' to save your first story.")
		return nil
	}

	c.io.Printf("Found %d story(ies):\n", len(stories))
	c.io.Println()

	for i, story := range stories {
		c.io.Printf("%d. %s\n", i+1, story.Title)
		c.io.Printf("   ID:    %s\n", story.ID)
		c.io.Printf("   Route: %s -> %s\n", story.Origin, story.Destination)
		c.io.Println()
	}
	return nil
}

// runDeleteStory удаляет историю
func (c *Cli) runDeleteStory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing story id. Usage: tripsync delete-story <id>")
	}

	if err := c.dataService.DeleteStory(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	c.io.Println("Story deleted.")
	return nil
}

// runSaveFeedback сохраняет оценку истории
func (c *Cli) runSaveFeedback(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tripsync save-feedback <story-id> <rating 1-5> [comment]")
	}

	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("rating must be a number: %w", err)
	}

	comment := ""
	if len(args) > 2 {
		comment = args[2]
	}

	feedback := &models.Feedback{
		StoryID: args[0],
		Rating:  rating,
		Comment: comment,
	}
	if err := c.dataService.SaveFeedback(ctx, feedback); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	c.io.Println("Feedback saved.")
	return nil
}
