package handler

import (
	"time"

	"Church_Community/internal/model"
)

// 老前端（Xano 风格）的响应形状在这里统一拼，业务层只产出 model

type UserOut struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	Age       *int      `json:"age"`
	Gender    *string   `json:"gender"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
}

func newUserOut(u *model.User) UserOut {
	return UserOut{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Age:       u.Age,
		Gender:    u.Gender,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}

// FileMeta Xano 风格的文件元信息对象，前端只认 url 字段
type FileMeta struct {
	Access string  `json:"access"`
	Path   string  `json:"path"`
	Name   *string `json:"name"`
	Type   string  `json:"type"`
	Size   *int64  `json:"size"`
	Mime   *string `json:"mime"`
	Meta   any     `json:"meta"`
	URL    string  `json:"url"`
}

func newFileMeta(url string) *FileMeta {
	if url == "" {
		return nil
	}
	return &FileMeta{
		Access: "public",
		Path:   url,
		Type:   "image",
		URL:    url,
	}
}

type ChurchOut struct {
	ID               uint64    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	ContactNumber    string    `json:"contact_number"`
	ShortDescription string    `json:"short_description"`
	CreatedBy        uint64    `json:"created_by"`
	Logo             *FileMeta `json:"logo"`
}

func newChurchOut(ch *model.Church) ChurchOut {
	return ChurchOut{
		ID:               ch.ID,
		CreatedAt:        ch.CreatedAt,
		Name:             ch.Name,
		Address:          ch.Address,
		City:             ch.City,
		State:            ch.State,
		ContactNumber:    ch.ContactNumber,
		ShortDescription: ch.ShortDescription,
		CreatedBy:        ch.CreatedBy,
		Logo:             newFileMeta(ch.Logo),
	}
}

func newChurchOutList(list []model.Church) []ChurchOut {
	out := make([]ChurchOut, 0, len(list))
	for i := range list {
		out = append(out, newChurchOut(&list[i]))
	}
	return out
}

type NewsOut struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ChurchID  uint64    `json:"church_id"`
	CreatedBy uint64    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Image     *FileMeta `json:"image"`
}

func newNewsOut(n *model.News) NewsOut {
	return NewsOut{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		ChurchID:  n.ChurchID,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Image:     newFileMeta(n.Image),
	}
}

func newNewsOutList(list []model.News) []NewsOut {
	out := make([]NewsOut, 0, len(list))
	for i := range list {
		out = append(out, newNewsOut(&list[i]))
	}
	return out
}

type MembershipOut struct {
	ID        uint64    `json:"id"`
	User      uint64    `json:"user"`
	Church    uint64    `json:"church"`
	CreatedAt time.Time `json:"created_at"`
	JoinedAt  time.Time `json:"joined_at"`
}

func newMembershipOut(m *model.ChurchMember) MembershipOut {
	return MembershipOut{
		ID:        m.ID,
		User:      m.UserID,
		Church:    m.ChurchID,
		CreatedAt: m.CreatedAt,
		JoinedAt:  m.JoinedAt,
	}
}
