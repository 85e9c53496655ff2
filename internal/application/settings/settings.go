// Package settings defines application-level configuration data.
package settings

// Post sources.
const (
	SourceFake  = "fake"
	SourceFeeds = "feeds"
)

// Theme modes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j,down'"`
	UpPage   string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u,pgup'"`
	DownPage string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d,pgdn'"`
	Open     string `yaml:"open" kong:"help='Open key',default='enter,l'"`
	Back     string `yaml:"back" kong:"help='Back key',default='esc,h'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Favorite string `yaml:"favorite" kong:"help='Favorite key',default='f'"`
	Bookmark string `yaml:"bookmark" kong:"help='Bookmark key',default='b'"`
	Share    string `yaml:"share" kong:"help='Share key',default='s'"`
	Settings string `yaml:"settings" kong:"help='Text settings key',default='t'"`
	Close    string `yaml:"close" kong:"help='Dialog close key',default='enter,c'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Mode string `yaml:"mode" kong:"help='Theme mode (light/dark)',default='light',enum='light,dark'"`
}

// Settings represents the application configuration.
type Settings struct {
	Source          string       `yaml:"source" kong:"help='Post source (fake/feeds)',default='fake',enum='fake,feeds'"`
	Feeds           []string     `yaml:"feeds" kong:"help='RSS/Atom feed URLs for the feeds source',default='https://android-developers.googleblog.com/atom.xml'"`
	KeyMap          KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme           ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	BookmarksFile   string       `yaml:"bookmarks_file" kong:"help='Bookmarks database path'"`
	LogFile         string       `yaml:"log_file" kong:"help='Log file path (empty disables logging)'"`
	FakeDelayMillis int          `yaml:"fake_delay_ms" kong:"name='fake-delay-ms',help='Simulated latency of the fake source',default='800'"`
	CacheTTLSeconds int          `yaml:"cache_ttl_seconds" kong:"help='Feed source cache TTL in seconds',default='300'"`
}

// DarkTheme reports whether the dark theme is selected.
func (s Settings) DarkTheme() bool {
	return s.Theme.Mode == ThemeDark
}
