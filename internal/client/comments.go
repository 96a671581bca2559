package client

import (
	"context"
	"fmt"
)

// LoadState tracks per-media comment loading.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
	LoadFailed
)

// Comments holds comment threads keyed by media id (see MediaID). Loads
// are deduplicated per key; mutations only touch local state after the
// backend confirms them.
type Comments struct {
	gw *Gateway

	states   map[string]LoadState
	comments map[string][]Comment
	errs     map[string]error
}

func NewComments(gw *Gateway) *Comments {
	return &Comments{
		gw:       gw,
		states:   make(map[string]LoadState),
		comments: make(map[string][]Comment),
		errs:     make(map[string]error),
	}
}

func (c *Comments) State(mediaURL string) LoadState {
	return c.states[MediaID(mediaURL)]
}

func (c *Comments) For(mediaURL string) []Comment {
	return c.comments[MediaID(mediaURL)]
}

func (c *Comments) LoadError(mediaURL string) error {
	return c.errs[MediaID(mediaURL)]
}

// Load fetches the thread for a media item. A load already running or
// already complete is a no-op; a failed load may be retried.
func (c *Comments) Load(ctx context.Context, mediaURL string) error {
	key := MediaID(mediaURL)
	switch c.states[key] {
	case Loading, Loaded:
		return nil
	}

	c.states[key] = Loading
	list, err := c.gw.ListComments(ctx, key)
	if err != nil {
		c.states[key] = LoadFailed
		c.errs[key] = err
		return err
	}

	c.states[key] = Loaded
	c.comments[key] = list
	delete(c.errs, key)
	return nil
}

// Add posts a comment and appends it once the backend confirms.
func (c *Comments) Add(ctx context.Context, mediaURL, content string) error {
	if content == "" {
		return fmt.Errorf("comment cannot be empty")
	}
	key := MediaID(mediaURL)

	comment, err := c.gw.AddComment(ctx, key, content)
	if err != nil {
		return err
	}
	c.comments[key] = append(c.comments[key], *comment)
	return nil
}

// CanEdit reports whether the session user authored the comment. Comments
// with no recorded author are editable by nobody.
func (c *Comments) CanEdit(comment Comment) bool {
	me := c.gw.Session().UserID
	return comment.UserID != "" && comment.UserID == me
}

func (c *Comments) Update(ctx context.Context, mediaURL string, comment Comment, content string) error {
	if !c.CanEdit(comment) {
		return fmt.Errorf("not the comment author")
	}
	if content == "" {
		return fmt.Errorf("comment cannot be empty")
	}
	key := MediaID(mediaURL)

	updated, err := c.gw.UpdateComment(ctx, comment.ID, content)
	if err != nil {
		return err
	}
	list := c.comments[key]
	for i := range list {
		if list[i].ID == comment.ID {
			list[i] = *updated
			break
		}
	}
	return nil
}

func (c *Comments) Delete(ctx context.Context, mediaURL string, comment Comment) error {
	if !c.CanEdit(comment) {
		return fmt.Errorf("not the comment author")
	}
	key := MediaID(mediaURL)

	if err := c.gw.DeleteComment(ctx, comment.ID); err != nil {
		return err
	}
	list := c.comments[key]
	for i := range list {
		if list[i].ID == comment.ID {
			c.comments[key] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}
