package cli

import (
	"context"
	"fmt"

	"github.com/roadtripai/tripsync/internal/models"
)

// runSaveTopic сохраняет тему разговора
func (c *Cli) runSaveTopic(ctx context.Context) error {
	name, err := c.io.ReadInput("Topic: ")
	if err != nil {
		return fmt.Errorf("failed to read topic: %w", err)
	}
	if name == "" {
		return fmt.Errorf("topic cannot be empty")
	}

	topicContext, err := c.io.ReadInput("Context: ")
	if err != nil {
		return fmt.Errorf("failed to read context: %w", err)
	}

	topic := &models.ConversationTopic{
		Topic:   name,
		Context: topicContext,
	}
	if err := c.dataService.SaveTopic(ctx, topic); err != nil {
		return fmt.Errorf("failed to save topic: %w", err)
	}

	c.io.Println("Topic saved.")
	c.io.Printf("ID: %s\n", topic.ID)
	return nil
}

// runListTopics выводит список тем разговоров
func (c *Cli) runListTopics(ctx context.Context) error {
	c.io.Println("=== Conversation Topics ===")
	c.io.Println()

	topics, err := c.dataService.ListTopics(ctx)
	if err != nil {
		return fmt.Errorf("failed to list topics: %w", err)
	}

	if len(topics) == 0 {
		c.io.Println("No topics found.")
		return nil
	}

	for i, topic := range topics {
		c.io.Printf("%d. %s\n", i+1, topic.Topic)
		c.io.Printf("   ID: %s\n", topic.ID)
		if topic.Context != "" {
			c.io.Printf("   Context: %s\n", topic.Context)
		}
		c.io.Println()
	}
	return nil
}

// runDeleteTopic удаляет тему разговора
func (c *Cli) runDeleteTopic(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing topic id. Usage: tripsync delete-topic <id>")
	}

	if err := c.dataService.DeleteTopic(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	c.io.Println("Topic deleted.")
	return nil
}
