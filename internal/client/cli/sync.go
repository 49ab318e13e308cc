package cli

import "context"

// Refresh re-reads every collection from local storage.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.feed.Refresh(ctx); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Refreshed.")
	return nil
}

// Sync pulls events and the profile from the backend.
func (a *App) Sync(ctx context.Context) error {
	if err := a.sync.RefreshEvents(ctx); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if a.isLoggedIn() {
		if err := a.sync.PullProfile(ctx); err != nil {
			printlnFn("error:", err.Error())
			return err
		}
	}
	printlnFn("Synced.")
	return nil
}
