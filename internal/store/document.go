// Package store reads and writes adventures. Every store follows the same
// contract: loading a path that holds nothing creates an empty adventure,
// persists it and returns it.
package store

import (
	"github.com/tatianab/text-adventure/internal/models"
)

// adventureDocument is the on-disk and on-wire form of an adventure.
type adventureDocument struct {
	Title     string             `yaml:"title,omitempty" json:"title,omitempty"`
	Locations []locationDocument `yaml:"locations" json:"locations"`
}

type locationDocument struct {
	ID          int                  `yaml:"id" json:"id"`
	Title       string               `yaml:"title" json:"title"`
	Description string               `yaml:"description" json:"description"`
	Searchable  bool                 `yaml:"searchable,omitempty" json:"searchable,omitempty"`
	Searched    bool                 `yaml:"searched,omitempty" json:"searched,omitempty"`
	Connections []connectionDocument `yaml:"connections,omitempty" json:"connections,omitempty"`
	Items       []itemDocument       `yaml:"items,omitempty" json:"items,omitempty"`
}

type connectionDocument struct {
	ID         int    `yaml:"id" json:"id"`
	Descriptor string `yaml:"descriptor" json:"descriptor"`
	Key        string `yaml:"key" json:"key"`
}

type itemDocument struct {
	Name    string `yaml:"name" json:"name"`
	Detail  string `yaml:"detail,omitempty" json:"detail,omitempty"`
	Key     string `yaml:"key" json:"key"`
	Visible bool   `yaml:"visible" json:"visible"`
}

func (d adventureDocument) toModel() *models.Adventure {
	adv := models.NewAdventure(d.Title)
	for _, ld := range d.Locations {
		loc := models.NewLocation(ld.ID, ld.Title, ld.Description)
		loc.Searchable = ld.Searchable
		loc.Searched = ld.Searched
		for _, cd := range ld.Connections {
			loc.Connections = append(loc.Connections, models.Connection{
				ID:         cd.ID,
				Descriptor: cd.Descriptor,
				Key:        cd.Key,
			})
		}
		for _, id := range ld.Items {
			loc.Items.Append(&models.Item{
				Name:    id.Name,
				Detail:  id.Detail,
				Key:     id.Key,
				Visible: id.Visible,
			})
		}
		adv.Locations.Append(loc)
	}
	return adv
}

func newDocument(adv *models.Adventure) adventureDocument {
	d := adventureDocument{
		Title:     adv.Title,
		Locations: make([]locationDocument, 0, adv.Locations.Len()),
	}
	for _, loc := range adv.Locations.All() {
		ld := locationDocument{
			ID:          loc.ID,
			Title:       loc.Title,
			Description: loc.Description,
			Searchable:  loc.Searchable,
			Searched:    loc.Searched,
		}
		for _, c := range loc.Connections {
			ld.Connections = append(ld.Connections, connectionDocument{
				ID:         c.ID,
				Descriptor: c.Descriptor,
				Key:        c.Key,
			})
		}
		for _, item := range loc.Items.All() {
			ld.Items = append(ld.Items, itemDocument{
				Name:    item.Name,
				Detail:  item.Detail,
				Key:     item.Key,
				Visible: item.Visible,
			})
		}
		d.Locations = append(d.Locations, ld)
	}
	return d
}
