package api

import "Minbar/internal/api/handler"

// HandlersGroup bundles the initialized handler instances.
type HandlersGroup struct {
	ArticleHandler    *handler.ArticleHandler
	FatwaHandler      *handler.FatwaHandler
	BookHandler       *handler.BookHandler
	WriterHandler     *handler.WriterHandler
	ScholarHandler    *handler.ScholarHandler
	TagHandler        *handler.TagHandler
	TopicHandler      *handler.TopicHandler
	UserHandler       *handler.UserHandler
	QuestionHandler   *handler.QuestionHandler
	QnaHandler        *handler.QnaHandler
	StatsHandler      *handler.StatsHandler
	EngagementHandler *handler.EngagementHandler
}
