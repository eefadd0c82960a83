package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx, args)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "save-story":
		return c.runSaveStory(ctx)
	case "get-story":
		return c.runGetStory(ctx, args)
	case "list-stories":
		return c.runListStories(ctx)
	case "delete-story":
		return c.runDeleteStory(ctx, args)
	case "save-topic":
		return c.runSaveTopic(ctx)
	case "list-topics":
		return c.runListTopics(ctx)
	case "delete-topic":
		return c.runDeleteTopic(ctx, args)
	case "save-feedback":
		return c.runSaveFeedback(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "conflicts":
		return c.runConflicts(ctx)
	case "resolve":
		return c.runResolve(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
