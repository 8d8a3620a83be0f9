// SPDX-License-Identifier: MIT

// Package catalog loads every backend-sourced dataset (movie metadata,
// chapters, audio-description scenes, points of interest) under one uniform
// fetch-with-timeout-and-fallback policy.
package catalog

import (
	"github.com/reelmate/reelmate/internal/i18n"
)

// Film describes the film itself.
type Film struct {
	FileURL     string `json:"file_url"`
	Title       string `json:"title"`
	SynopsisURL string `json:"synopsis_url"`
}

// Subtitles holds per-language subtitle track URLs.
type Subtitles struct {
	EN string `json:"en"`
	FR string `json:"fr"`
	ES string `json:"es"`
}

// Movie is the top-level metadata document served by the film backend.
// It is replaced wholesale, never merged field by field.
type Movie struct {
	Film             Film      `json:"film"`
	Subtitles        Subtitles `json:"subtitles"`
	AudioDescription string    `json:"audio-description"`
	Chapters         string    `json:"chapters"`
	POI              string    `json:"poi"`
}

// Chapter is one entry of the chapter navigation dataset.
type Chapter struct {
	Chapter       int    `json:"chapter"`
	Timestamp     string `json:"timestamp"`
	Title         string `json:"title"`
	TitleFR       string `json:"title_fr"`
	TitleES       string `json:"title_es"`
	Description   string `json:"description"`
	DescriptionFR string `json:"description_fr"`
	DescriptionES string `json:"description_es"`
}

// LocalTitle returns the chapter title in the given language.
func (c Chapter) LocalTitle(lang i18n.Lang) string {
	return i18n.Pick(lang, c.Title, c.TitleFR, c.TitleES)
}

// LocalDescription returns the chapter description in the given language.
func (c Chapter) LocalDescription(lang i18n.Lang) string {
	return i18n.Pick(lang, c.Description, c.DescriptionFR, c.DescriptionES)
}

// Scene is one entry of the audio-description script.
type Scene struct {
	Scene         int    `json:"scene"`
	Timestamp     string `json:"timestamp"`
	Description   string `json:"description"`
	DescriptionFR string `json:"description_fr"`
	DescriptionES string `json:"description_es"`
}

// LocalDescription returns the scene narration in the given language.
func (s Scene) LocalDescription(lang i18n.Lang) string {
	return i18n.Pick(lang, s.Description, s.DescriptionFR, s.DescriptionES)
}

// POITimestamp ties a point of interest to a playback moment.
type POITimestamp struct {
	Time    string `json:"time"`
	Scene   string `json:"scene"`
	SceneFR string `json:"scene_fr"`
	SceneES string `json:"scene_es"`
}

// LocalScene returns the moment caption in the given language.
func (p POITimestamp) LocalScene(lang i18n.Lang) string {
	return i18n.Pick(lang, p.Scene, p.SceneFR, p.SceneES)
}

// POI is one point of interest shown on the companion map.
type POI struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	TitleFR     string         `json:"title_fr"`
	TitleES     string         `json:"title_es"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Description string         `json:"description"`
	Timestamps  []POITimestamp `json:"timestamps"`
}

// LocalTitle returns the POI title in the given language.
func (p POI) LocalTitle(lang i18n.Lang) string {
	return i18n.Pick(lang, p.Title, p.TitleFR, p.TitleES)
}
