package model

// Tab is one entry of the tab bar
type Tab struct {
	Title string
	Icon  string
	Path  string
}

// TabBar is the container every screen registers its tab into
type TabBar struct {
	Tabs []Tab
}
