package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultFixtures []byte

// Fixtures is the seed file layout. Cross references use names, not ids.
type Fixtures struct {
	Users     []UserFixture     `yaml:"users"`
	DataRooms []DataRoomFixture `yaml:"data_rooms"`
	Projects  []ProjectFixture  `yaml:"projects"`
}

type UserFixture struct {
	AuthProviderUserID string `yaml:"auth_provider_user_id"`
}

type DataRoomFixture struct {
	Name string        `yaml:"name"`
	Tree []NodeFixture `yaml:"tree"`
}

// NodeFixture is either a folder (with children) or a document (with content)
type NodeFixture struct {
	Folder   string        `yaml:"folder"`
	Document string        `yaml:"document"`
	Content  string        `yaml:"content"`
	Children []NodeFixture `yaml:"children"`
}

type ProjectFixture struct {
	Name        string          `yaml:"name"`
	Description *string         `yaml:"description"`
	DataRooms   []string        `yaml:"data_rooms"`
	Members     []MemberFixture `yaml:"members"`
}

type MemberFixture struct {
	User string `yaml:"user"`
	Role string `yaml:"role"`
}

// loadFixtures reads path, or the embedded seed.yaml when path is empty
func loadFixtures(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		data = raw
	}
	return parseFixtures(data)
}

func parseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// validate checks references and node shapes; field-level rules are left to the services
func (f *Fixtures) validate() error {
	users := make(map[string]bool)
	for _, u := range f.Users {
		users[u.AuthProviderUserID] = true
	}

	rooms := make(map[string]bool)
	for _, r := range f.DataRooms {
		if rooms[r.Name] {
			return fmt.Errorf("fixtures: duplicate data room %q", r.Name)
		}
		rooms[r.Name] = true
		if err := validateNodes(r.Name, r.Tree); err != nil {
			return err
		}
	}

	for _, p := range f.Projects {
		for _, name := range p.DataRooms {
			if !rooms[name] {
				return fmt.Errorf("fixtures: project %q links unknown data room %q", p.Name, name)
			}
		}
		for _, m := range p.Members {
			if !users[m.User] {
				return fmt.Errorf("fixtures: project %q has unknown member %q", p.Name, m.User)
			}
		}
	}

	return nil
}

func validateNodes(room string, nodes []NodeFixture) error {
	for _, n := range nodes {
		switch {
		case n.Folder != "" && n.Document != "":
			return fmt.Errorf("fixtures: node in %q is both folder %q and document %q", room, n.Folder, n.Document)
		case n.Folder == "" && n.Document == "":
			return fmt.Errorf("fixtures: node in %q has neither folder nor document", room)
		case n.Document != "" && len(n.Children) > 0:
			return fmt.Errorf("fixtures: document %q in %q cannot have children", n.Document, room)
		}
		if err := validateNodes(room, n.Children); err != nil {
			return err
		}
	}
	return nil
}
