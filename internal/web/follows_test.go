package web

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/quillworks/quill/internal/models"
)

func TestFollowLifecycle(t *testing.T) {
	e := newEnv(t, nil)
	follower := e.data.addUser("user_follower")
	blogger := e.data.addUser("blogger")
	bystander := e.data.addUser("bystander")
	e.data.addPost(models.Post{Text: "Test text", AuthorID: blogger.ID})

	followerCookie := e.login(follower)
	bystanderCookie := e.login(bystander)

	// Follow
	w := e.postForm("/profile/blogger/follow/", url.Values{}, followerCookie)
	if w.Code != http.StatusFound {
		t.Fatalf("POST follow = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/profile/blogger/" {
		t.Errorf("Location = %q, want /profile/blogger/", loc)
	}
	if len(e.data.follows) != 1 {
		t.Fatalf("Expected 1 follow edge, got %d", len(e.data.follows))
	}
	edge := e.data.follows[0]
	if edge.UserID != follower.ID || edge.AuthorID != blogger.ID {
		t.Errorf("Follow edge = %+v, want (%d, %d)", edge, follower.ID, blogger.ID)
	}

	// The followed author's post appears in the follower's feed
	feedPage := e.get("/follow/", followerCookie)
	if !strings.Contains(feedPage.Body.String(), "Test text") {
		t.Error("Followed author's post should appear in the personalized feed")
	}

	// ...but not in an unrelated user's feed
	otherFeed := e.get("/follow/", bystanderCookie)
	if got := countArticles(otherFeed.Body.String()); got != 0 {
		t.Errorf("Unrelated user's feed lists %d posts, want 0", got)
	}

	// Unfollow removes the edge
	w = e.postForm("/profile/blogger/unfollow/", url.Values{}, followerCookie)
	if w.Code != http.StatusFound {
		t.Fatalf("POST unfollow = %d, want 302", w.Code)
	}
	if len(e.data.follows) != 0 {
		t.Errorf("Expected no follow edges after unfollow, got %d", len(e.data.follows))
	}
}

func TestFollowIsIdempotent(t *testing.T) {
	e := newEnv(t, nil)
	follower := e.data.addUser("user_follower")
	e.data.addUser("blogger")
	cookie := e.login(follower)

	e.postForm("/profile/blogger/follow/", url.Values{}, cookie)
	e.postForm("/profile/blogger/follow/", url.Values{}, cookie)

	if len(e.data.follows) != 1 {
		t.Errorf("Repeated follow should keep a single edge, got %d", len(e.data.follows))
	}
}

func TestSelfFollowIsRejected(t *testing.T) {
	e := newEnv(t, nil)
	user := e.data.addUser("auth")
	cookie := e.login(user)

	w := e.postForm("/profile/auth/follow/", url.Values{}, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("Self-follow = %d, want 302 no-op redirect", w.Code)
	}
	if len(e.data.follows) != 0 {
		t.Errorf("Self-follow must not create an edge, got %d", len(e.data.follows))
	}
}

func TestUnfollowWithoutEdgeIsNoop(t *testing.T) {
	e := newEnv(t, nil)
	user := e.data.addUser("auth")
	e.data.addUser("blogger")
	cookie := e.login(user)

	w := e.postForm("/profile/blogger/unfollow/", url.Values{}, cookie)
	if w.Code != http.StatusFound {
		t.Errorf("Unfollow without edge = %d, want 302", w.Code)
	}
}

func TestFollowUnknownAuthor(t *testing.T) {
	e := newEnv(t, nil)
	user := e.data.addUser("auth")
	cookie := e.login(user)

	w := e.postForm("/profile/nobody/follow/", url.Values{}, cookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("Follow unknown author = %d, want 404", w.Code)
	}
}

func TestAnonymousFollowRedirectsToLogin(t *testing.T) {
	e := newEnv(t, nil)
	e.data.addUser("blogger")

	w := e.postForm("/profile/blogger/follow/", url.Values{}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("Anonymous follow = %d, want 302", w.Code)
	}
	want := "/auth/login/?next=" + url.QueryEscape("/profile/blogger/follow/")
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
	if len(e.data.follows) != 0 {
		t.Errorf("Anonymous follow must not create an edge, got %d", len(e.data.follows))
	}
}
