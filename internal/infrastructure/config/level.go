package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LevelConfig is the parsed form of a levels/levelNN.csv file
type LevelConfig struct {
	Number  int
	Budget  int
	Terrain []string
	Enemies []EnemySpawnConfig
}

type EnemySpawnConfig struct {
	Type  string
	Level int
	Wave  int
	Path  int
}

const (
	sectionMetadata = "METADATA"
	sectionTerrain  = "TERRAIN"
	sectionEnemies  = "ENEMIES"

	enemyHeaderField = "Enemy Type"
)

// ParseLevel reads the sectioned level format:
//
//	## START METADATA ##
//	LevelNumber,1
//	Budget,5
//	## END METADATA ##
//	## START TERRAIN ##
//	..........
//	## END TERRAIN ##
//	## START ENEMIES ##
//	Enemy Type,Level,Wave,Path
//	Grunt,1,1,0
//	## END ENEMIES ##
//
// Lines outside a section are ignored. Metadata and enemy rows with the
// wrong number of fields are skipped.
func ParseLevel(r io.Reader) (*LevelConfig, error) {
	cfg := &LevelConfig{}
	seen := map[string]bool{}
	hasNumber := false

	section := ""
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if name, ok := sectionMarker(line, "START"); ok {
			section = name
			seen[name] = true
			continue
		}
		if _, ok := sectionMarker(line, "END"); ok {
			section = ""
			continue
		}

		switch section {
		case sectionMetadata:
			fields := splitFields(line)
			if len(fields) != 2 {
				continue
			}
			n, err := strconv.Atoi(fields[1])
			switch fields[0] {
			case "LevelNumber":
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid level number %q: %w", lineNo, fields[1], err)
				}
				cfg.Number = n
				hasNumber = true
			case "Budget":
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid budget %q: %w", lineNo, fields[1], err)
				}
				cfg.Budget = n
			}
		case sectionTerrain:
			if line == "" {
				continue
			}
			cfg.Terrain = append(cfg.Terrain, line)
		case sectionEnemies:
			spawn, ok, err := parseEnemyRow(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if ok {
				cfg.Enemies = append(cfg.Enemies, spawn)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan level: %w", err)
	}

	for _, name := range []string{sectionMetadata, sectionTerrain, sectionEnemies} {
		if !seen[name] {
			return nil, fmt.Errorf("missing %s section", name)
		}
	}
	if !hasNumber {
		return nil, fmt.Errorf("missing LevelNumber in %s section", sectionMetadata)
	}

	return cfg, nil
}

func parseEnemyRow(line string) (EnemySpawnConfig, bool, error) {
	fields := splitFields(line)
	if len(fields) != 4 || fields[0] == enemyHeaderField {
		return EnemySpawnConfig{}, false, nil
	}

	nums := make([]int, 3)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return EnemySpawnConfig{}, false, fmt.Errorf("invalid enemy row %q: %w", line, err)
		}
		nums[i] = n
	}

	return EnemySpawnConfig{
		Type:  fields[0],
		Level: nums[0],
		Wave:  nums[1],
		Path:  nums[2],
	}, true, nil
}

func sectionMarker(line, kind string) (string, bool) {
	prefix := "## " + kind + " "
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(line, prefix)
	name, _, ok := strings.Cut(rest, " ##")
	if !ok {
		return "", false
	}
	return name, true
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
