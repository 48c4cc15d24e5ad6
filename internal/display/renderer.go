// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package display renders service results and session notices for the user.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-cinema-client/internal/app"
	"github.com/MKhiriev/go-cinema-client/models"
)

// TimeLayout is the layout of screening start and end times.
const TimeLayout = time.DateTime

// Renderer writes styled output to one writer. Styles come from a lipgloss
// renderer bound to that writer, so output that is not a terminal stays
// plain text.
type Renderer struct {
	out io.Writer

	titleStyle  lipgloss.Style
	idStyle     lipgloss.Style
	faintStyle  lipgloss.Style
	errorStyle  lipgloss.Style
	noticeStyle lipgloss.Style
}

func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)

	return &Renderer{
		out:         out,
		titleStyle:  r.NewStyle().Bold(true),
		idStyle:     r.NewStyle().Foreground(lipgloss.Color("6")),
		faintStyle:  r.NewStyle().Faint(true),
		errorStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		noticeStyle: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Films prints the film collection, or a notice when it is empty.
func (r *Renderer) Films(films []models.Film) {
	if len(films) == 0 {
		r.Notice(app.MsgNoFilms)
		return
	}

	var b strings.Builder
	b.WriteString(r.titleStyle.Render(fmt.Sprintf("Films (%d):", len(films))))
	b.WriteByte('\n')
	for _, f := range films {
		fmt.Fprintf(&b, "  %s %s %s\n",
			r.idStyle.Render(fmt.Sprintf("#%d", f.ID)),
			f.Name,
			r.faintStyle.Render("("+f.Duration.String()+")"),
		)
	}

	io.WriteString(r.out, b.String())
}

// Screenings prints one line per screening in the given order, or a notice
// when there are none.
func (r *Renderer) Screenings(screenings []models.Screening) {
	if len(screenings) == 0 {
		r.Notice(app.MsgNoScreenings)
		return
	}

	var b strings.Builder
	b.WriteString(r.titleStyle.Render(fmt.Sprintf("Screenings (%d):", len(screenings))))
	b.WriteByte('\n')
	for _, s := range screenings {
		b.WriteString("  ")
		b.WriteString(r.screeningLine(s))
		b.WriteByte('\n')
	}

	io.WriteString(r.out, b.String())
}

func (r *Renderer) screeningLine(s models.Screening) string {
	parts := []string{
		r.idStyle.Render(fmt.Sprintf("#%d", s.ID)),
		fmt.Sprintf("film %d", s.FilmID),
	}

	if s.Venue != nil {
		parts = append(parts, fmt.Sprintf("venue %d", s.Venue.ID))
	}

	parts = append(parts, fmt.Sprintf("%s – %s",
		s.StartDate.Format(TimeLayout),
		s.EndDate.Format(TimeLayout),
	))

	if s.Venue != nil {
		parts = append(parts, r.faintStyle.Render(fmt.Sprintf("seats %d/%d purchased",
			s.Venue.PurchasedSeatsCount, s.Venue.MaximumSeatsCount)))
	}

	return strings.Join(parts, " · ")
}

// Error prints err on its own line.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.out, r.errorStyle.Render("Error: "+err.Error()))
}

// Notice prints an informational session message.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, r.noticeStyle.Render(msg))
}

// Message prints msg unstyled.
func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.out, msg)
}
