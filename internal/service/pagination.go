package service

import "Church_Community/internal/model"

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// NewsPage 一页新闻窗口及相邻页指针
type NewsPage struct {
	Items    []model.News
	Total    int64
	Page     int
	PerPage  int
	Offset   int
	NextPage *int
	PrevPage *int
}

// normalizePaging 页码和页大小的钳制：page>=1，per_page∈[1,100]
func normalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	return page, perPage
}

// pagePointers 相邻页指针。
// next 只看窗口后面是否还有数据；prev 只看 page>1，就算请求的是
// 超出末尾的空页，prev 也照样给。
func pagePointers(page, offset, received int, total int64) (next, prev *int) {
	if int64(offset+received) < total {
		n := page + 1
		next = &n
	}
	if page > 1 {
		p := page - 1
		prev = &p
	}
	return next, prev
}
