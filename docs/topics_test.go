package docs

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the documentation stays in sync with itself:
// every topic listed in readme.md loads, and every topic file on disk is
// listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	re := regexp.MustCompile("`([a-z-]+)`")
	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "-") {
			continue
		}
		if m := re.FindStringSubmatch(line); m != nil {
			topicsInReadme = append(topicsInReadme, m[1])
		}
	}

	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	listed := make(map[string]bool)
	for _, topic := range topicsInReadme {
		listed[topic] = true
	}
	for _, topic := range all {
		if !listed[topic] {
			t.Errorf("topic file %q is not listed in readme.md", topic)
		}
	}
}

// TestTopicStructure parses every topic with goldmark and checks it opens
// with a level-1 heading.
func TestTopicStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}

	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error = %v", topic, err)
		}

		source := []byte(content)
		root := goldmark.DefaultParser().Parse(text.NewReader(source))

		first := root.FirstChild()
		if first == nil {
			t.Errorf("topic %q is empty", topic)
			continue
		}
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q must start with a level-1 heading, got %v", topic, first.Kind())
			continue
		}
		title := string(heading.Text(source))
		if title == "" {
			t.Errorf("topic %q has an empty title", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() accepted an unknown topic")
	}
}

func TestGetTopics_Concatenates(t *testing.T) {
	got, err := GetTopics("health-factor", "looping")
	if err != nil {
		t.Fatalf("GetTopics() error = %v", err)
	}
	for _, want := range []string{"# Health Factor", "# Looping"} {
		if !strings.Contains(got, want) {
			t.Errorf("GetTopics() missing %q", want)
		}
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	topics, _ := GetAllTopics()
	for _, topic := range topics {
		content, _ := GetTopic(topic)
		title := strings.SplitN(content, "\n", 2)[0]
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(*) missing %s", fmt.Sprintf("title %q of topic %q", title, topic))
		}
	}
}
