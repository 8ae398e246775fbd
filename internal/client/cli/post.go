package cli

import (
	"context"
	"fmt"
)

func (a *App) AddPost(ctx context.Context) error {

	token, err := a.token()
	if err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}

	body, err := GetMultiline(a.reader, "Enter post body", a.out)
	if err != nil {
		return err
	}

	post, err := a.client.CreatePost(ctx, token, title, body)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Published %s\n", post.ID)
	return nil
}

func (a *App) ListPosts(ctx context.Context) error {

	token, err := a.token()
	if err != nil {
		return err
	}

	posts, err := a.client.ListPosts(ctx, token)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet")
		return nil
	}

	for _, p := range posts {
		fmt.Fprintf(a.out, "%s  %s  %s\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"), p.Title)
	}
	return nil
}
