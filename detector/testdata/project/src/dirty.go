package src

const label = "badword"
