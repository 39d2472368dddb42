// package formatter exports poster data to various formats (Markdown, plain text)
package formatter

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"posterkit/internal/normalize"
	"posterkit/internal/shared"
)

// PosterText renders a poster as plain text, one line per field with a
// numbered track list.
func PosterText(poster normalize.Poster) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Album: %s\n", poster.Name))
	buf.WriteString(fmt.Sprintf("Artist: %s\n", poster.Artist))
	buf.WriteString(fmt.Sprintf("Released: %s\n", poster.ReleaseDate))
	buf.WriteString(fmt.Sprintf("Label: %s\n", poster.Label))
	buf.WriteString(fmt.Sprintf("Length: %s\n\n", poster.Length))

	for i, track := range poster.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, track))
	}

	return buf.Bytes()
}

// PosterMarkdown renders a poster as Markdown with an optional local cover image reference.
func PosterMarkdown(poster normalize.Poster, imageFilename string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", poster.Name))

	if imageFilename != "" {
		buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", imageFilename))
	}

	buf.WriteString(fmt.Sprintf("**Artist**: %s\n", poster.Artist))
	buf.WriteString(fmt.Sprintf("**Released**: %s\n", poster.ReleaseDate))
	buf.WriteString(fmt.Sprintf("**Label**: %s\n", poster.Label))
	buf.WriteString(fmt.Sprintf("**Length**: %s\n\n", poster.Length))

	buf.WriteString("## Tracks\n\n")
	for i, track := range poster.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, track))
	}

	return buf.Bytes()
}

// ToJSON generates a JSON representation of the poster.
func ToJSON(poster normalize.Poster, pretty bool) ([]byte, error) {
	return shared.MarshalJSON(poster, pretty)
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty image URL", shared.ErrInvalidArgument)
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory  string
	Files      []string
	CoverImage string
}

// WriteMarkdownExport writes a poster to {dir}/README.md, downloading the
// cover image to {dir}/cover.jpg when the poster carries an image URL.
//
// The directory name defaults to the album name. A failed cover download is a
// warning, not an error; the Markdown is written either way.
func WriteMarkdownExport(poster normalize.Poster, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = poster.Name
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var coverImageFilename string
	if poster.Image != "" {
		imageData, err := DownloadImage(poster.Image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to download cover image: %v\n", err)
		} else {
			coverImageFilename = "cover.jpg"
			coverImagePath := filepath.Join(outputDir, coverImageFilename)
			if err := os.WriteFile(coverImagePath, imageData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save cover image: %v\n", err)
				coverImageFilename = ""
			} else {
				result.CoverImage = coverImagePath
				result.Files = append(result.Files, coverImagePath)
			}
		}
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, PosterMarkdown(poster, coverImageFilename), 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteTextExport writes a poster to a plain text file.
//
// Defaults to "{album name}_poster.txt" as the filename.
func WriteTextExport(poster normalize.Poster, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s_poster.txt", poster.Name)
	}

	if err := os.WriteFile(path, PosterText(poster), 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}
