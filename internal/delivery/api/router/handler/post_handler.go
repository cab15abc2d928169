package handler

import (
	"log/slog"

	"bulletin/internal/delivery/api/response"
	deliverycontext "bulletin/internal/delivery/context"
	"bulletin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves the post endpoints.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postUC.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPostResponses(posts))
}

func (h *PostHandler) ListPostsByAuthor(c echo.Context) error {
	authorID, err := uuidParam(c, "authorID")
	if err != nil {
		return err
	}

	posts, err := h.postUC.ListPostsByAuthor(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPostResponses(posts))
}

func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := uuidParam(c, "postID")
	if err != nil {
		return err
	}

	post, err := h.postUC.GetPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPostResponse(post))
}

// CreatePost stores a post authored by the caller.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    deliverycontext.GetIdentity(c).UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newPostResponse(post))
}

func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := uuidParam(c, "postID")
	if err != nil {
		return err
	}

	var req UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postUC.UpdatePost(c.Request().Context(), postID, usecase.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPostResponse(post))
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := uuidParam(c, "postID")
	if err != nil {
		return err
	}

	if err := h.postUC.DeletePost(c.Request().Context(), postID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
