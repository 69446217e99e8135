package archive

import (
	"fmt"
	"sort"
)

// StationMappings maps archive channel codes to the network they carry.
// The codes are the valid values for SearchOptions.Channel.
var StationMappings = map[string]string{
	"ALJAZAM":   "Al Jazeera America",
	"BLOOMBERG": "Bloomberg",
	"CNBC":      "CNBC",
	"CNN":       "CNN",
	"CNNW":      "CNN",
	"COM":       "Comedy Central",
	"CSPAN":     "CSPAN",
	"CSPAN2":    "CSPAN",
	"CSPAN3":    "CSPAN",
	"CURRENT":   "Current",
	"FBC":       "FOX Business",
	"FOXNEWS":   "FOX News",
	"FOXNEWSW":  "FOX News",
	"KBCW":      "CW",
	"KCAU":      "ABC",
	"KCCI":      "Me-TV",
	"KCRG":      "ABC",
	"KCSM":      "PBS",
	"KDTV":      "Univision",
	"KGAN":      "CBS",
	"KGO":       "ABC",
	"KLAS":      "CBS",
	"KMEG":      "CBS",
	"KNTV":      "NBC",
	"KOLO":      "ABC",
	"KPIX":      "CBS",
	"KQED":      "PBS",
	"KQEH":      "PBS",
	"KRCB":      "PBS",
	"KSNV":      "NBC",
	"KSTS":      "Telemundo",
	"KTIV":      "NBC",
	"KTNV":      "ABC",
	"KTVN":      "CBS",
	"KTVU":      "FOX",
	"KUSA":      "NBC",
	"KVVU":      "FOX",
	"KWWL":      "NBC",
	"KYW":       "CBS",
	"LINKTV":    "LINKTV",
	"MSNBC":     "MSNBC",
	"MSNBCW":    "MSNBC",
	"WABC":      "ABC",
	"WBAL":      "NBC",
	"WBFF":      "FOX",
	"WBZ":       "CBS",
	"WCAU":      "NBC",
	"WCBS":      "CBS",
	"WCPO":      "ABC",
	"WCVB":      "ABC",
	"WESH":      "NBC",
	"WEWS":      "ABC",
	"WFDC":      "Univision",
	"WFLA":      "NBC",
	"WFTS":      "ABC",
	"WFTV":      "ABC",
	"WFXT":      "FOX",
	"WGN":       "CW",
	"WHDH":      "NBC",
	"WHO":       "NBC",
	"WIS":       "NBC",
	"WJLA":      "ABC",
	"WJW":       "FOX",
	"WJZ":       "CBS",
	"WKMG":      "CBS",
	"WKRC":      "CBS",
	"WKYC":      "NBC",
	"WLTX":      "CBS",
	"WLWT":      "NBC",
	"WMAR":      "ABC",
	"WMPT":      "PBS",
	"WMUR":      "ABC",
	"WNBC":      "NBC",
	"WNYW":      "FOX",
	"WOI":       "ABC",
	"WOIO":      "CBS",
	"WPLG":      "ABC",
	"WPVI":      "ABC",
	"WRAL":      "CBS",
	"WRC":       "NBC",
	"WSPA":      "CBS",
	"WTTG":      "FOX",
	"WTVD":      "ABC",
	"WTVT":      "FOX",
	"WTXF":      "FOX",
	"WUSA":      "CBS",
	"WUVP":      "Univision",
	"WYFF":      "NBC",
}

// NetworkName returns the network carried by a channel code, or "" for an
// unknown code.
func NetworkName(channel string) string {
	return StationMappings[channel]
}

// Channels returns all known channel codes in sorted order.
func Channels() []string {
	codes := make([]string, 0, len(StationMappings))
	for code := range StationMappings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// BuildAiredShowIdentifier builds the archive identifier of one airing from
// its parts, e.g.
//
//	BuildAiredShowIdentifier("FOXNEWSW", "20160101", "070000", "Red_Eye")
//
// yields "FOXNEWSW_20160101_070000_Red_Eye".
func BuildAiredShowIdentifier(network, date, utcTime, showName string) string {
	return network + "_" + date + "_" + utcTime + "_" + showName
}

// BuildCaptionURL builds the caption-chunk URL prefix for an aired show.
// Appending "<start>/<end>" (seconds) to the result selects one window.
func (c *Client) BuildCaptionURL(identifier string) string {
	return fmt.Sprintf("%s/%s/%s.cc5.srt?t=", c.downloadBaseURL, identifier, identifier)
}
