package controllers

import (
	"context"
	"errors"
	"strconv"

	"goodsoil/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type BlogController struct{}

func NewBlogController() *BlogController {
	return &BlogController{}
}

// GetPosts godoc
// @Summary Get blog posts
// @Description Get all published blog posts, newest first
// @Tags Blog
// @Produce json
// @Success 200 {object} models.Response
// @Router /blog_posts [get]
func (ctrl *BlogController) GetPosts(c *gin.Context) {
	rows, err := models.DB.Query(context.Background(),
		`SELECT id, title, COALESCE(excerpt, ''), COALESCE(image_url, ''), COALESCE(category, ''),
			COALESCE(author, ''), publish_date, COALESCE(read_time, ''), status
		FROM blog_posts
		WHERE status = 'published'
		ORDER BY publish_date DESC`)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch blog posts"})
		return
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.ImageURL, &p.Category,
			&p.Author, &p.PublishDate, &p.ReadTime, &p.Status); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch blog posts"})
			return
		}
		posts = append(posts, p)
	}

	c.JSON(200, gin.H{"success": true, "data": posts})
}

// GetPost godoc
// @Summary Get blog post
// @Description Get a single published blog post with its full content
// @Tags Blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /blog_posts/{id} [get]
func (ctrl *BlogController) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Blog post not found"})
		return
	}

	var p models.BlogPost
	err = models.DB.QueryRow(context.Background(),
		`SELECT id, title, COALESCE(excerpt, ''), COALESCE(content, ''), COALESCE(image_url, ''),
			COALESCE(category, ''), COALESCE(author, ''), publish_date, COALESCE(read_time, ''), status
		FROM blog_posts
		WHERE id = $1 AND status = 'published'`,
		id).Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL,
		&p.Category, &p.Author, &p.PublishDate, &p.ReadTime, &p.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(404, gin.H{"success": false, "message": "Blog post not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch blog post"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": p})
}
