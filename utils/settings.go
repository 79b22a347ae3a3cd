package utils

const Prompt = "deg> "
const HistoryFile = ".degtrig_history"

// "f32" or "f64"
const DefaultPrecision = "f64"

const ConfigDir = ".config/degtrig"
const ConfigFile = "config.toml"
