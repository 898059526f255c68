package cli

import (
	"context"
	"fmt"
)

func (a *App) Notifications(ctx context.Context) error {
	list, err := a.social.Notifications(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	for _, n := range list {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s [%s] %s  %s", mark, n.ID, n.Message, n.Timestamp))
	}
	return nil
}

func (a *App) MarkRead(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "read <notification id>")
	if err != nil {
		return err
	}
	if err := a.social.MarkRead(ctx, id); err != nil {
		return err
	}
	a.refreshBadge(ctx)
	return nil
}

func (a *App) MarkAllRead(ctx context.Context) error {
	if err := a.social.MarkAllRead(ctx); err != nil {
		return err
	}
	a.refreshBadge(ctx)
	printlnFn("All notifications read.")
	return nil
}

// refreshBadge updates the prompt badge without waiting for the poller.
func (a *App) refreshBadge(ctx context.Context) {
	n, err := a.social.UnreadCount(ctx)
	if err != nil {
		a.log.Debug(ctx, "badge refresh failed", "error", err)
		return
	}
	a.setBadge(n)
}
